package components

import (
	"pass-config-engine/internal/infra/db"
	"pass-config-engine/internal/infra/readstore"
	"pass-config-engine/internal/infra/repository"
	"pass-config-engine/internal/infra/uow"
	"pass-config-engine/internal/usecase/queries"
	"pass-config-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Artifacts
		readstore.NewArtifactLookup,
		fx.Annotate(
			readstore.NewDefaultTemplateSource,
			fx.As(new(shared.DefaultTemplateSource)),
		),
		// Saved configurations
		fx.Annotate(
			readstore.NewSavedConfigReadStore,
			fx.As(new(queries.SavedConfigReadStore)),
		),
		// Sellers
		fx.Annotate(
			readstore.NewSellerReadStore,
			fx.As(new(queries.SellerReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Remote draft store
		repository.NewDraftStore,
		// Row mapping shared with the saved configuration read store
		repository.NewSavedConfigRepository,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
