package bootstrap

import (
	"context"
	"log/slog"

	"pass-config-engine/internal/infra/cache"
	"pass-config-engine/internal/infra/readstore"
	"pass-config-engine/internal/infra/repository"
	"pass-config-engine/internal/pkg/clock"
	"pass-config-engine/internal/pkg/config"
	"pass-config-engine/internal/usecase/reconcile"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var ReconcileModule = fx.Module("reconcile",
	fx.Provide(
		NewReconciler,
		NewPoller,
	),
	fx.Invoke(func(*reconcile.Poller) {}),
)

func NewReconciler(
	client *redis.Client,
	store *repository.DraftStore,
	lookup *readstore.ArtifactLookup,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *reconcile.Reconciler {
	local := cache.NewDraftCache(client, cfg.Draft.LocalCacheTTL, logger)
	return reconcile.NewReconciler(local, store, lookup, clk, logger,
		reconcile.WithWriteTimeout(cfg.Draft.RemoteWriteTimeout),
		// a session outliving its cached draft has nothing left to reconcile
		reconcile.WithIdleTTL(cfg.Draft.LocalCacheTTL),
	)
}

// NewPoller ties the retry loop to the application lifecycle. Stopping it
// drains in-flight remote writes.
func NewPoller(lc fx.Lifecycle, rec *reconcile.Reconciler, cfg config.Config, logger *slog.Logger) *reconcile.Poller {
	p := reconcile.NewPoller(rec, cfg.Draft.PollInterval, cfg.Draft.PollBatchSize, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Start(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return p.Stop(ctx)
		},
	})

	return p
}
