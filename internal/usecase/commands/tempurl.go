package commands

import (
	"context"

	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/tempurl"
	"pass-config-engine/internal/pkg/clock"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/pkg/patch"
	"pass-config-engine/internal/usecase/reconcile"
	"pass-config-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=tempurl.go -destination=../../../tests/mock/commands/tempurl.go -package=commandsmock

type TempURLCommands interface {
	Create(ctx context.Context, sessionID string, req CreateURLRequest) (*tempurl.URL, error)
	Update(ctx context.Context, sessionID string, id uuid.UUID, req UpdateURLRequest) (*tempurl.URL, error)
	Delete(ctx context.Context, sessionID string, id uuid.UUID) error
}

type CreateURLRequest struct {
	Name        string
	Address     *string
	Description *string
}

// UpdateURLRequest is a partial update; unset fields keep their value.
type UpdateURLRequest struct {
	Name        *string
	Address     patch.Nullable[string]
	Description patch.Nullable[string]
}

type tempURLUseCaseImpl struct {
	uow   shared.UnitOfWork
	rec   *reconcile.Reconciler
	clock clock.Clock
}

func NewTempURLUseCase(uow shared.UnitOfWork, rec *reconcile.Reconciler, clk clock.Clock) TempURLCommands {
	return &tempURLUseCaseImpl{uow: uow, rec: rec, clock: clk}
}

func (uc *tempURLUseCaseImpl) Create(ctx context.Context, sessionID string, req CreateURLRequest) (*tempurl.URL, error) {
	if err := uc.requireRegistry(ctx, sessionID); err != nil {
		return nil, err
	}

	u, err := tempurl.NewURL(sessionID, req.Name, req.Address, req.Description, uc.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}
	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.URLs().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		return nil, err
	}

	if err := uc.markRegistry(ctx, sessionID); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *tempURLUseCaseImpl) Update(ctx context.Context, sessionID string, id uuid.UUID, req UpdateURLRequest) (*tempurl.URL, error) {
	if err := uc.requireRegistry(ctx, sessionID); err != nil {
		return nil, err
	}

	var updated *tempurl.URL
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := tx.URLs().FindByID(ctx, tx.DB(), sessionID, id)
		if derr != nil {
			return derr
		}
		name := patch.Coalesce(req.Name, u.Name())
		address := req.Address.Apply(u.Address())
		description := req.Description.Apply(u.Description())
		if derr = u.Update(name, address, description, uc.clock.Now()); derr != nil {
			return invalid(derr)
		}
		if derr = tx.URLs().Update(ctx, tx.DB(), u); derr != nil {
			return derr
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.markRegistry(ctx, sessionID); err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *tempURLUseCaseImpl) Delete(ctx context.Context, sessionID string, id uuid.UUID) error {
	return uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.URLs().Delete(ctx, tx.DB(), sessionID, id)
	})
}

func (uc *tempURLUseCaseImpl) requireRegistry(ctx context.Context, sessionID string) error {
	d, err := uc.rec.Pull(ctx, sessionID)
	if err != nil {
		return err
	}
	if !d.DeliveryMethod().UsesURLs() {
		return errs.Validation(ErrRegistryNotApplicable)
	}
	return nil
}

// markRegistry records registry content on the draft. It never completes delivery.
func (uc *tempURLUseCaseImpl) markRegistry(ctx context.Context, sessionID string) error {
	_, err := uc.rec.Edit(ctx, sessionID, func(d *draft.Draft) (bool, error) {
		if d.Dimensions().Delivery.HasRegistryContent {
			return false, nil
		}
		d.MarkRegistryContent(uc.clock.Now())
		return true, nil
	})
	return err
}
