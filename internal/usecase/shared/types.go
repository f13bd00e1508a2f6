package shared

import (
	"context"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"

	"github.com/google/uuid"
)

// DraftLocalCache is the fast local copy of each session's draft plus the set
// of sessions whose latest state has not reached the remote store.
type DraftLocalCache interface {
	Get(ctx context.Context, sessionID string) (*draft.Draft, bool, error)
	Put(ctx context.Context, d *draft.Draft) error
	Delete(ctx context.Context, sessionID string) error
	MarkPending(ctx context.Context, sessionID string) error
	ClearPending(ctx context.Context, sessionID string) error
	IsPending(ctx context.Context, sessionID string) (bool, error)
	ListPending(ctx context.Context, limit int64) ([]string, error)
}

// DraftRemoteStore is the durable copy of drafts. Fetch reports found=false for
// sessions it has never stored.
type DraftRemoteStore interface {
	Fetch(ctx context.Context, sessionID string) (d *draft.Draft, found bool, err error)
	Store(ctx context.Context, d *draft.Draft) error
}

// ArtifactLookup lists what the external editor has registered for a session.
type ArtifactLookup interface {
	RefsBySession(ctx context.Context, sessionID string) ([]artifact.Ref, error)
}

type DefaultTemplateSource interface {
	Content(ctx context.Context, kind artifact.Kind) (string, error)
}

type PromotedEvent struct {
	ConfigurationID uuid.UUID
	Name            string
	SessionID       string
	PricingMode     string
	DeliveryMethod  string
	FinalPrice      string
	URLMap          map[string]string
	PromotedAt      time.Time
}

type EventPublisher interface {
	PublishPromoted(ctx context.Context, evt PromotedEvent) error
}
