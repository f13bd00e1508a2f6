package response

import (
	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/usecase/commands"
)

type ArtifactRefResponse struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Origin string `json:"origin"`
}

func fromRef(r *artifact.Ref) *ArtifactRefResponse {
	if r == nil {
		return nil
	}
	return &ArtifactRefResponse{ID: r.ID.String(), Kind: string(r.Kind), Origin: string(r.Origin)}
}

func fromRefs(refs []artifact.Ref) []ArtifactRefResponse {
	out := make([]ArtifactRefResponse, len(refs))
	for i := range refs {
		out[i] = *fromRef(&refs[i])
	}
	return out
}

type LimitSettingResponse struct {
	Locked       bool `json:"locked"`
	DefaultValue int  `json:"default_value"`
	RangeMax     int  `json:"range_max"`
}

type LimitsResponse struct {
	Guests    LimitSettingResponse `json:"guests"`
	Days      LimitSettingResponse `json:"days"`
	Confirmed bool                 `json:"confirmed"`
}

// PricingResponse renders amounts as decimal strings.
type PricingResponse struct {
	Mode              string `json:"mode,omitempty"`
	Price             string `json:"price"`
	BasePrice         string `json:"base_price"`
	PerGuestIncrement string `json:"per_guest_increment"`
	PerDayIncrement   string `json:"per_day_increment"`
	CommissionPercent string `json:"commission_percent"`
	TaxEnabled        bool   `json:"tax_enabled"`
	TaxPercent        string `json:"tax_percent"`
}

func FromPricing(p pricing.Params) PricingResponse {
	return PricingResponse{
		Mode:              string(p.Mode),
		Price:             p.Price.String(),
		BasePrice:         p.BasePrice.String(),
		PerGuestIncrement: p.PerGuestIncrement.String(),
		PerDayIncrement:   p.PerDayIncrement.String(),
		CommissionPercent: p.CommissionPercent.String(),
		TaxEnabled:        p.TaxEnabled,
		TaxPercent:        p.TaxPercent.String(),
	}
}

type DeliveryResponse struct {
	Method             string               `json:"method,omitempty"`
	LandingPage        string               `json:"landing_page,omitempty"`
	LandingTemplate    *ArtifactRefResponse `json:"landing_template,omitempty"`
	HasRegistryContent bool                 `json:"has_registry_content"`
}

type WelcomeEmailResponse struct {
	UseCustomTemplate *bool                `json:"use_custom_template"`
	Template          *ArtifactRefResponse `json:"template,omitempty"`
}

type RebuyEmailResponse struct {
	Enabled           *bool                `json:"enabled"`
	UseCustomTemplate *bool                `json:"use_custom_template"`
	Template          *ArtifactRefResponse `json:"template,omitempty"`
}

type DimensionsResponse struct {
	Limits   LimitsResponse       `json:"limits"`
	Pricing  PricingResponse      `json:"pricing"`
	Delivery DeliveryResponse     `json:"delivery"`
	Welcome  WelcomeEmailResponse `json:"welcome_email"`
	Rebuy    RebuyEmailResponse   `json:"rebuy_email"`
	FutureQR *bool                `json:"future_qr"`
}

func FromDimensions(d draft.Dimensions) DimensionsResponse {
	return DimensionsResponse{
		Limits: LimitsResponse{
			Guests:    LimitSettingResponse(d.Limits.Guests),
			Days:      LimitSettingResponse(d.Limits.Days),
			Confirmed: d.Limits.Confirmed,
		},
		Pricing: FromPricing(d.Pricing),
		Delivery: DeliveryResponse{
			Method:             string(d.Delivery.Method),
			LandingPage:        string(d.Delivery.LandingPage),
			LandingTemplate:    fromRef(d.Delivery.LandingTemplate),
			HasRegistryContent: d.Delivery.HasRegistryContent,
		},
		Welcome: WelcomeEmailResponse{
			UseCustomTemplate: d.Welcome.UseCustomTemplate,
			Template:          fromRef(d.Welcome.Template),
		},
		Rebuy: RebuyEmailResponse{
			Enabled:           d.Rebuy.Enabled,
			UseCustomTemplate: d.Rebuy.UseCustomTemplate,
			Template:          fromRef(d.Rebuy.Template),
		},
		FutureQR: d.FutureQR.Allowed,
	}
}

type DraftResponse struct {
	SessionID  string                `json:"session_id"`
	Dimensions DimensionsResponse    `json:"dimensions"`
	Completed  []string              `json:"completed"`
	Complete   bool                  `json:"complete"`
	Artifacts  []ArtifactRefResponse `json:"artifacts"`
	UpdatedAt  int64                 `json:"updated_at"`
}

func FromDraft(d *draft.Draft) *DraftResponse {
	done := d.Completed()
	completed := make([]string, 0, done.Len())
	for _, dim := range draft.AllDimensions {
		if done.Has(dim) {
			completed = append(completed, dim.String())
		}
	}
	return &DraftResponse{
		SessionID:  d.SessionID(),
		Dimensions: FromDimensions(d.Dimensions()),
		Completed:  completed,
		Complete:   d.AllComplete(),
		Artifacts:  fromRefs(d.Artifacts()),
		UpdatedAt:  d.UpdatedAt().Unix(),
	}
}

type DeliveryChangeResponse struct {
	Draft           *DraftResponse `json:"draft"`
	RegistryCleared bool           `json:"registry_cleared"`
	URLsRemoved     int64          `json:"urls_removed"`
}

func FromDeliveryResult(r *commands.DeliveryResult) *DeliveryChangeResponse {
	return &DeliveryChangeResponse{
		Draft:           FromDraft(r.Draft),
		RegistryCleared: r.RegistryCleared,
		URLsRemoved:     r.URLsRemoved,
	}
}

type RegisterArtifactResponse struct {
	Artifact ArtifactRefResponse `json:"artifact"`
	Draft    *DraftResponse      `json:"draft"`
}

func FromRegisterArtifactResult(r *commands.RegisterArtifactResult) *RegisterArtifactResponse {
	return &RegisterArtifactResponse{
		Artifact: *fromRef(&r.Artifact),
		Draft:    FromDraft(r.Draft),
	}
}
