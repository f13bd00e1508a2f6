package components

import (
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/pkg/clock"
	"pass-config-engine/internal/pkg/config"
	"pass-config-engine/internal/usecase/commands"
	"pass-config-engine/internal/usecase/queries"
	"pass-config-engine/internal/usecase/reconcile"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultCalculator,
		fx.As(new(pricing.Calculator)),
	),
	func(cfg config.Config) queries.PageLimits {
		return queries.PageLimits{
			Default: cfg.Library.DefaultPageSize,
			Max:     cfg.Library.MaxPageSize,
		}
	},
	func(rec *reconcile.Reconciler) queries.DraftSource {
		return rec
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDraftUseCase,
		commands.NewTempURLUseCase,
		commands.NewLibraryUseCase,
		commands.NewPromotionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLibraryQueries,
		queries.NewPricingQueries,
		queries.NewSellerQueries,
		queries.NewTempURLQueries,
	),
)
