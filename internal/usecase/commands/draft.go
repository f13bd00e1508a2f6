package commands

import (
	"context"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/pkg/clock"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/usecase/reconcile"
	"pass-config-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=draft.go -destination=../../../tests/mock/commands/draft.go -package=commandsmock

type DraftCommands interface {
	Begin(ctx context.Context) (*draft.Draft, error)
	Load(ctx context.Context, sessionID string) (*draft.Draft, error)
	Clear(ctx context.Context, sessionID string) (*draft.Draft, error)
	Recheck(ctx context.Context, sessionID string) (*draft.Draft, error)

	ConfigureLimits(ctx context.Context, sessionID string, limits draft.Limits) (*draft.Draft, error)
	SetPricing(ctx context.Context, sessionID string, params pricing.Params) (*draft.Draft, error)
	SetDeliveryMethod(ctx context.Context, sessionID string, method draft.DeliveryMethod) (*DeliveryResult, error)
	ChooseLandingPage(ctx context.Context, sessionID string, choice draft.LandingPageChoice) (*draft.Draft, error)
	ChooseWelcomeTemplate(ctx context.Context, sessionID string, custom bool) (*draft.Draft, error)
	ConfigureRebuy(ctx context.Context, sessionID string, req RebuyRequest) (*draft.Draft, error)
	SetFutureQR(ctx context.Context, sessionID string, allowed bool) (*draft.Draft, error)

	// RegisterArtifact stores a template produced by the external editor and
	// merges it into the session's draft.
	RegisterArtifact(ctx context.Context, sessionID string, req RegisterArtifactRequest) (*RegisterArtifactResult, error)
	// MergeArtifacts merges refs announced for artifacts that already exist.
	MergeArtifacts(ctx context.Context, sessionID string, refs []artifact.Ref) (*draft.Draft, error)
}

type DeliveryResult struct {
	Draft           *draft.Draft
	RegistryCleared bool
	URLsRemoved     int64
}

type RebuyRequest struct {
	Enabled           bool
	UseCustomTemplate *bool
}

type RegisterArtifactRequest struct {
	ID      *uuid.UUID
	Kind    artifact.Kind
	Content string
}

type RegisterArtifactResult struct {
	Draft    *draft.Draft
	Artifact artifact.Ref
}

type draftUseCaseImpl struct {
	uow       shared.UnitOfWork
	rec       *reconcile.Reconciler
	templates shared.DefaultTemplateSource
	clock     clock.Clock
}

func NewDraftUseCase(uow shared.UnitOfWork, rec *reconcile.Reconciler, templates shared.DefaultTemplateSource, clk clock.Clock) DraftCommands {
	return &draftUseCaseImpl{uow: uow, rec: rec, templates: templates, clock: clk}
}

func (uc *draftUseCaseImpl) Begin(ctx context.Context) (*draft.Draft, error) {
	d, err := draft.New(uuid.NewString(), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.rec.Push(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *draftUseCaseImpl) Load(ctx context.Context, sessionID string) (*draft.Draft, error) {
	return uc.rec.Pull(ctx, sessionID)
}

func (uc *draftUseCaseImpl) Recheck(ctx context.Context, sessionID string) (*draft.Draft, error) {
	return uc.rec.Recheck(ctx, sessionID)
}

// Clear wipes the session's draft, registry and unsaved artifacts. There is no undo.
func (uc *draftUseCaseImpl) Clear(ctx context.Context, sessionID string) (*draft.Draft, error) {
	fresh, err := draft.New(sessionID, uc.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}

	release := uc.rec.Freeze(sessionID)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.URLs().DeleteBySession(ctx, tx.DB(), sessionID); derr != nil {
			return derr
		}
		if _, derr := tx.Artifacts().DeleteBySession(ctx, tx.DB(), sessionID); derr != nil {
			return derr
		}
		return tx.Drafts().Delete(ctx, tx.DB(), sessionID)
	})
	release(err == nil)
	if err != nil {
		return nil, err
	}

	if err := uc.rec.Discard(ctx, sessionID); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (uc *draftUseCaseImpl) ConfigureLimits(ctx context.Context, sessionID string, limits draft.Limits) (*draft.Draft, error) {
	return uc.mutate(ctx, sessionID, func(d *draft.Draft, now time.Time) error {
		return d.ConfigureLimits(limits, now)
	})
}

func (uc *draftUseCaseImpl) SetPricing(ctx context.Context, sessionID string, params pricing.Params) (*draft.Draft, error) {
	return uc.mutate(ctx, sessionID, func(d *draft.Draft, now time.Time) error {
		return d.SetPricing(params, now)
	})
}

func (uc *draftUseCaseImpl) SetDeliveryMethod(ctx context.Context, sessionID string, method draft.DeliveryMethod) (*DeliveryResult, error) {
	res := &DeliveryResult{}
	d, err := uc.mutate(ctx, sessionID, func(d *draft.Draft, now time.Time) error {
		cleared, derr := d.SetDeliveryMethod(method, now)
		if derr != nil || !cleared {
			return derr
		}
		// The rows go first; the draft is only pushed once they are gone.
		return uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
			n, derr := tx.URLs().DeleteBySession(ctx, tx.DB(), sessionID)
			res.RegistryCleared = derr == nil
			res.URLsRemoved = n
			return derr
		})
	})
	if err != nil {
		return nil, err
	}
	res.Draft = d
	return res, nil
}

func (uc *draftUseCaseImpl) ChooseLandingPage(ctx context.Context, sessionID string, choice draft.LandingPageChoice) (*draft.Draft, error) {
	return uc.mutate(ctx, sessionID, func(d *draft.Draft, now time.Time) error {
		var ref *artifact.Ref
		if choice == draft.LandingPageDefault && d.DeliveryMethod().UsesURLs() {
			var derr error
			if ref, derr = uc.defaultSnapshot(ctx, d, artifact.KindLanding, d.Dimensions().Delivery.LandingTemplate); derr != nil {
				return derr
			}
		}
		return d.ChooseLandingPage(choice, ref, now)
	})
}

func (uc *draftUseCaseImpl) ChooseWelcomeTemplate(ctx context.Context, sessionID string, custom bool) (*draft.Draft, error) {
	return uc.mutate(ctx, sessionID, func(d *draft.Draft, now time.Time) error {
		var ref *artifact.Ref
		if !custom {
			var derr error
			if ref, derr = uc.defaultSnapshot(ctx, d, artifact.KindWelcome, d.Dimensions().Welcome.Template); derr != nil {
				return derr
			}
		}
		return d.ChooseWelcomeTemplate(custom, ref, now)
	})
}

func (uc *draftUseCaseImpl) ConfigureRebuy(ctx context.Context, sessionID string, req RebuyRequest) (*draft.Draft, error) {
	return uc.mutate(ctx, sessionID, func(d *draft.Draft, now time.Time) error {
		var ref *artifact.Ref
		if req.Enabled && req.UseCustomTemplate != nil && !*req.UseCustomTemplate {
			var derr error
			if ref, derr = uc.defaultSnapshot(ctx, d, artifact.KindRebuy, d.Dimensions().Rebuy.Template); derr != nil {
				return derr
			}
		}
		return d.ConfigureRebuy(req.Enabled, req.UseCustomTemplate, ref, now)
	})
}

func (uc *draftUseCaseImpl) SetFutureQR(ctx context.Context, sessionID string, allowed bool) (*draft.Draft, error) {
	return uc.mutate(ctx, sessionID, func(d *draft.Draft, now time.Time) error {
		d.SetFutureQR(allowed, now)
		return nil
	})
}

func (uc *draftUseCaseImpl) RegisterArtifact(ctx context.Context, sessionID string, req RegisterArtifactRequest) (*RegisterArtifactResult, error) {
	a, err := artifact.NewArtifact(sessionID, req.Kind, artifact.OriginCustom, req.Content, uc.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}
	if req.ID != nil {
		a = artifact.ReconstructArtifact(*req.ID, sessionID, a.Kind(), a.Origin(), a.Content(), a.CreatedAt())
	}

	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Artifacts().Create(ctx, tx.DB(), a)
	})
	if err != nil {
		return nil, err
	}

	d, err := uc.MergeArtifacts(ctx, sessionID, []artifact.Ref{a.Ref()})
	if err != nil {
		return nil, err
	}
	return &RegisterArtifactResult{Draft: d, Artifact: a.Ref()}, nil
}

func (uc *draftUseCaseImpl) MergeArtifacts(ctx context.Context, sessionID string, refs []artifact.Ref) (*draft.Draft, error) {
	d, _, err := uc.rec.Merge(ctx, sessionID, refs)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// mutate is the pull, change, push cycle shared by every dimension setter.
// Nothing is pushed when fn fails.
func (uc *draftUseCaseImpl) mutate(ctx context.Context, sessionID string, fn func(d *draft.Draft, now time.Time) error) (*draft.Draft, error) {
	return uc.rec.Edit(ctx, sessionID, func(d *draft.Draft) (bool, error) {
		if err := fn(d, uc.clock.Now()); err != nil {
			return false, invalid(err)
		}
		return true, nil
	})
}

// defaultSnapshot copies the current default template into a session artifact.
// A default the draft already holds is reused.
func (uc *draftUseCaseImpl) defaultSnapshot(ctx context.Context, d *draft.Draft, kind artifact.Kind, current *artifact.Ref) (*artifact.Ref, error) {
	if current != nil && current.Kind == kind && current.Origin == artifact.OriginDefault {
		ref := *current
		return &ref, nil
	}

	content, err := uc.templates.Content(ctx, kind)
	if err != nil {
		return nil, errs.Wrapf(err, "load default %s template", kind)
	}
	a, err := artifact.NewArtifact(d.SessionID(), kind, artifact.OriginDefault, content, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Artifacts().Create(ctx, tx.DB(), a)
	})
	if err != nil {
		return nil, err
	}
	ref := a.Ref()
	return &ref, nil
}
