package messaging

import (
	"time"

	"github.com/google/uuid"
)

const (
	ArtifactEventsExchange = "artifact_events"
	artifactEventsQueue    = "pass_config.artifact_events"

	ConfigurationEventsExchange = "configuration_events"
	promotedRoutingKey          = "configuration.promoted"

	contentTypeJSON = "application/json"
)

// ArtifactRegisteredPayload is emitted by the template editor after it stores
// one or more artifacts for a session.
type ArtifactRegisteredPayload struct {
	SessionID string               `json:"session_id"`
	Artifacts []ArtifactRefPayload `json:"artifacts"`
}

type ArtifactRefPayload struct {
	ID     uuid.UUID `json:"id"`
	Kind   string    `json:"kind"`
	Origin string    `json:"origin"`
}

type ConfigurationPromotedPayload struct {
	ConfigurationID uuid.UUID         `json:"configuration_id"`
	Name            string            `json:"name"`
	SessionID       string            `json:"session_id"`
	PricingMode     string            `json:"pricing_mode"`
	DeliveryMethod  string            `json:"delivery_method"`
	FinalPrice      string            `json:"final_price"`
	URLMap          map[string]string `json:"url_map"`
	PromotedAt      time.Time         `json:"promoted_at"`
}
