package commands

import (
	"context"
	"log/slog"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/savedconfig"
	"pass-config-engine/internal/domain/tempurl"
	"pass-config-engine/internal/pkg/clock"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/pkg/metrics"
	"pass-config-engine/internal/usecase/reconcile"
	"pass-config-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=library.go -destination=../../../tests/mock/commands/library.go -package=commandsmock

type LibraryCommands interface {
	UpdateMetadata(ctx context.Context, id uuid.UUID, name, description string) (*savedconfig.SavedConfiguration, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// BulkDelete removes every id or none of them and returns how many were deleted.
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error)
	Assign(ctx context.Context, id, sellerID uuid.UUID) (*savedconfig.SavedConfiguration, error)
	// Clone opens a new draft session pre-filled from a saved configuration.
	Clone(ctx context.Context, id uuid.UUID) (*draft.Draft, error)
}

type libraryUseCaseImpl struct {
	uow    shared.UnitOfWork
	rec    *reconcile.Reconciler
	clock  clock.Clock
	logger *slog.Logger
}

func NewLibraryUseCase(uow shared.UnitOfWork, rec *reconcile.Reconciler, clk clock.Clock, logger *slog.Logger) LibraryCommands {
	return &libraryUseCaseImpl{uow: uow, rec: rec, clock: clk, logger: logger}
}

func (uc *libraryUseCaseImpl) UpdateMetadata(ctx context.Context, id uuid.UUID, name, description string) (*savedconfig.SavedConfiguration, error) {
	var updated *savedconfig.SavedConfiguration
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := tx.Configurations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := cfg.UpdateMetadata(name, description, uc.clock.Now()); err != nil {
			return invalid(err)
		}
		if err := tx.Configurations().UpdateMetadata(ctx, tx.DB(), cfg); err != nil {
			return err
		}
		updated = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *libraryUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := uc.BulkDelete(ctx, []uuid.UUID{id})
	return err
}

func (uc *libraryUseCaseImpl) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return 0, errs.Validation(ErrConfigurationIDRequired)
	}

	var removed int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var candidates []uuid.UUID
		for _, id := range unique {
			cfg, err := tx.Configurations().FindForUpdate(ctx, tx.DB(), id)
			if err != nil {
				return err
			}
			for _, ref := range cfg.Artifacts() {
				candidates = append(candidates, ref.ID)
			}
			if err := tx.Configurations().Delete(ctx, tx.DB(), id); err != nil {
				return err
			}
		}
		if len(candidates) == 0 {
			return nil
		}
		n, err := tx.Artifacts().DeleteOrphans(ctx, tx.DB(), dedupe(candidates))
		removed = n
		return err
	})
	if err != nil {
		return 0, err
	}

	metrics.OrphanArtifactsRemoved.Add(float64(removed))
	uc.logger.Info("configurations deleted", "count", len(unique), "orphan_artifacts", removed)
	return len(unique), nil
}

func (uc *libraryUseCaseImpl) Assign(ctx context.Context, id, sellerID uuid.UUID) (*savedconfig.SavedConfiguration, error) {
	var assigned *savedconfig.SavedConfiguration
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := tx.Configurations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		ok, err := tx.Sellers().Exists(ctx, tx.DB(), sellerID)
		if err != nil {
			return err
		}
		if !ok {
			return errs.NotFound(ErrSellerNotFound)
		}

		holder, err := tx.Configurations().FindBySeller(ctx, tx.DB(), sellerID)
		if err != nil {
			return err
		}
		if holder != nil && *holder != id {
			return errs.Conflict(ErrSellerAlreadyAssigned)
		}

		if err := cfg.AssignTo(sellerID, uc.clock.Now()); err != nil {
			return errs.Conflict(err)
		}
		if holder == nil {
			if err := tx.Configurations().Assign(ctx, tx.DB(), id, sellerID); err != nil {
				return err
			}
		}
		assigned = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

func (uc *libraryUseCaseImpl) Clone(ctx context.Context, id uuid.UUID) (*draft.Draft, error) {
	sessionID := uuid.NewString()
	now := uc.clock.Now()

	var cloned *draft.Draft
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := tx.Configurations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		remap, err := uc.copyArtifacts(ctx, tx, cfg, sessionID, now)
		if err != nil {
			return err
		}

		d, err := cfg.ToDraft(sessionID, remap, now)
		if err != nil {
			return errs.Persistence(err)
		}

		urls := cfg.URLs()
		for _, snap := range urls {
			u, err := tempurl.NewURL(sessionID, snap.Name, snap.Address, snap.Description, now)
			if err != nil {
				return invalid(err)
			}
			if err := tx.URLs().Create(ctx, tx.DB(), u); err != nil {
				return err
			}
		}
		if len(urls) > 0 && d.DeliveryMethod().UsesURLs() {
			d.MarkRegistryContent(now)
		}
		cloned = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.rec.Push(ctx, cloned); err != nil {
		return nil, err
	}
	return cloned, nil
}

// copyArtifacts duplicates the configuration's artifacts into sessionID and
// returns old id to new ref.
func (uc *libraryUseCaseImpl) copyArtifacts(ctx context.Context, tx shared.Tx, cfg *savedconfig.SavedConfiguration, sessionID string, now time.Time) (map[uuid.UUID]artifact.Ref, error) {
	refs := cfg.Artifacts()
	remap := make(map[uuid.UUID]artifact.Ref, len(refs))
	if len(refs) == 0 {
		return remap, nil
	}

	ids := make([]uuid.UUID, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	originals, err := tx.Artifacts().FindByIDs(ctx, tx.DB(), ids)
	if err != nil {
		return nil, err
	}
	for _, a := range originals {
		cp := a.CopyFor(sessionID, now)
		if err := tx.Artifacts().Create(ctx, tx.DB(), cp); err != nil {
			return nil, err
		}
		remap[a.ID()] = cp.Ref()
	}
	return remap, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
