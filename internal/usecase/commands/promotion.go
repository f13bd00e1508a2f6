package commands

import (
	"context"
	"log/slog"
	"strings"

	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/domain/savedconfig"
	"pass-config-engine/internal/pkg/clock"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/pkg/metrics"
	"pass-config-engine/internal/usecase/reconcile"
	"pass-config-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=promotion.go -destination=../../../tests/mock/commands/promotion.go -package=commandsmock

type PromotionCommands interface {
	Promote(ctx context.Context, sessionID string, req PromoteRequest) (*PromotionResult, error)
}

type PromoteRequest struct {
	Name        string
	Description string
}

type PromotionResult struct {
	Configuration  *savedconfig.SavedConfiguration
	NewSessionID   string
	ArtifactsFreed int64
	URLsReleased   int64
}

type promotionUseCaseImpl struct {
	uow       shared.UnitOfWork
	rec       *reconcile.Reconciler
	calc      pricing.Calculator
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewPromotionUseCase(
	uow shared.UnitOfWork,
	rec *reconcile.Reconciler,
	calc pricing.Calculator,
	publisher shared.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) PromotionCommands {
	return &promotionUseCaseImpl{uow: uow, rec: rec, calc: calc, publisher: publisher, clock: clk, logger: logger}
}

// Promote turns a complete draft into a saved configuration in one transaction
// and starts a fresh session. Nothing is written when the draft is incomplete
// or the name is blank.
func (uc *promotionUseCaseImpl) Promote(ctx context.Context, sessionID string, req PromoteRequest) (*PromotionResult, error) {
	// No edit of the session may land between the read and the commit.
	release := uc.rec.Freeze(sessionID)
	d, err := uc.rec.Pull(ctx, sessionID)
	if err != nil {
		release(false)
		return nil, err
	}
	if !d.AllComplete() {
		release(false)
		metrics.Promotions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, errs.Validation(&IncompleteError{Missing: missingDimensions(d)})
	}
	if strings.TrimSpace(req.Name) == "" {
		release(false)
		metrics.Promotions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, errs.Validation(savedconfig.ErrNameRequired)
	}

	res := &PromotionResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		urls, derr := tx.URLs().ListBySession(ctx, tx.DB(), sessionID)
		if derr != nil {
			return derr
		}
		cfg, derr := savedconfig.FromDraft(d, req.Name, req.Description, urls, uc.calc, uc.clock.Now())
		if derr != nil {
			return invalid(derr)
		}

		if derr = tx.Configurations().Create(ctx, tx.DB(), cfg); derr != nil {
			return derr
		}
		if derr = tx.Artifacts().DetachFromSession(ctx, tx.DB(), sessionID, cfg.Templates().All()); derr != nil {
			return derr
		}
		if res.ArtifactsFreed, derr = tx.Artifacts().DeleteBySession(ctx, tx.DB(), sessionID); derr != nil {
			return derr
		}
		if res.URLsReleased, derr = tx.URLs().DeleteBySession(ctx, tx.DB(), sessionID); derr != nil {
			return derr
		}
		if derr = tx.Drafts().Delete(ctx, tx.DB(), sessionID); derr != nil {
			return derr
		}
		res.Configuration = cfg
		return nil
	})
	release(err == nil)
	if err != nil {
		metrics.Promotions.WithLabelValues(metrics.OutcomeFailure).Inc()
		return nil, err
	}
	metrics.Promotions.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.OrphanArtifactsRemoved.Add(float64(res.ArtifactsFreed))

	if derr := uc.rec.Discard(ctx, sessionID); derr != nil {
		uc.logger.Warn("failed to drop local copy of promoted draft", "session_id", sessionID, "error", derr)
	}

	next, err := draft.New(uuid.NewString(), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if perr := uc.rec.Push(ctx, next); perr != nil {
		uc.logger.Warn("failed to persist new session draft", "session_id", next.SessionID(), "error", perr)
	}
	res.NewSessionID = next.SessionID()

	uc.publish(ctx, sessionID, res.Configuration)
	return res, nil
}

func (uc *promotionUseCaseImpl) publish(ctx context.Context, sessionID string, cfg *savedconfig.SavedConfiguration) {
	if uc.publisher == nil {
		return
	}
	evt := shared.PromotedEvent{
		ConfigurationID: cfg.ID(),
		Name:            cfg.Name(),
		SessionID:       sessionID,
		PricingMode:     string(cfg.PricingMode()),
		DeliveryMethod:  string(cfg.Delivery()),
		FinalPrice:      cfg.Price().Breakdown.DisplayString(),
		URLMap:          cfg.URLMap(),
		PromotedAt:      cfg.CreatedAt(),
	}
	if err := uc.publisher.PublishPromoted(ctx, evt); err != nil {
		metrics.EventsPublished.WithLabelValues(metrics.OutcomeFailure).Inc()
		uc.logger.Warn("failed to publish promotion event", "configuration_id", cfg.ID(), "error", err)
		return
	}
	metrics.EventsPublished.WithLabelValues(metrics.OutcomeSuccess).Inc()
}
