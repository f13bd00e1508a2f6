package request

import (
	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/pkg/patch"
	"pass-config-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LimitSettingRequest struct {
	Locked       bool `json:"locked"`
	DefaultValue int  `json:"default_value" binding:"required,min=1"`
	RangeMax     int  `json:"range_max" binding:"required,min=1"`
}

func (r LimitSettingRequest) toDomain() draft.LimitSetting {
	return draft.LimitSetting{Locked: r.Locked, DefaultValue: r.DefaultValue, RangeMax: r.RangeMax}
}

type LimitsRequest struct {
	Guests LimitSettingRequest `json:"guests"`
	Days   LimitSettingRequest `json:"days"`
	// Confirmed is sent by an explicit save; autosaves leave it false.
	Confirmed bool `json:"confirmed"`
}

func (r LimitsRequest) ToDomain() draft.Limits {
	return draft.Limits{Guests: r.Guests.toDomain(), Days: r.Days.toDomain(), Confirmed: r.Confirmed}
}

// PricingRequest accepts amounts as JSON numbers or strings.
type PricingRequest struct {
	Mode              string           `json:"mode" binding:"required"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	BasePrice         *decimal.Decimal `json:"base_price,omitempty"`
	PerGuestIncrement *decimal.Decimal `json:"per_guest_increment,omitempty"`
	PerDayIncrement   *decimal.Decimal `json:"per_day_increment,omitempty"`
	CommissionPercent *decimal.Decimal `json:"commission_percent,omitempty"`
	TaxEnabled        bool             `json:"tax_enabled"`
	TaxPercent        *decimal.Decimal `json:"tax_percent,omitempty"`
}

func (r PricingRequest) ToDomain() (pricing.Params, error) {
	mode, err := pricing.ParseMode(r.Mode)
	if err != nil {
		return pricing.Params{}, errs.Validation(err)
	}
	return pricing.Params{
		Mode:              mode,
		Price:             patch.Coalesce(r.Price, decimal.Zero),
		BasePrice:         patch.Coalesce(r.BasePrice, decimal.Zero),
		PerGuestIncrement: patch.Coalesce(r.PerGuestIncrement, decimal.Zero),
		PerDayIncrement:   patch.Coalesce(r.PerDayIncrement, decimal.Zero),
		CommissionPercent: patch.Coalesce(r.CommissionPercent, decimal.Zero),
		TaxEnabled:        r.TaxEnabled,
		TaxPercent:        patch.Coalesce(r.TaxPercent, decimal.Zero),
	}, nil
}

type DeliveryRequest struct {
	Method string `json:"method" binding:"required"`
}

func (r DeliveryRequest) ToDomain() (draft.DeliveryMethod, error) {
	m, err := draft.ParseDeliveryMethod(r.Method)
	if err != nil {
		return "", errs.Validation(err)
	}
	return m, nil
}

type LandingPageRequest struct {
	Choice string `json:"choice" binding:"required"`
}

func (r LandingPageRequest) ToDomain() (draft.LandingPageChoice, error) {
	c, err := draft.ParseLandingPageChoice(r.Choice)
	if err != nil {
		return "", errs.Validation(err)
	}
	return c, nil
}

type WelcomeEmailRequest struct {
	UseCustomTemplate *bool `json:"use_custom_template" binding:"required"`
}

type RebuyEmailRequest struct {
	Enabled           *bool `json:"enabled" binding:"required"`
	UseCustomTemplate *bool `json:"use_custom_template,omitempty"`
}

func (r RebuyEmailRequest) ToCommand() commands.RebuyRequest {
	return commands.RebuyRequest{Enabled: *r.Enabled, UseCustomTemplate: r.UseCustomTemplate}
}

type FutureQRRequest struct {
	Allowed *bool `json:"allowed" binding:"required"`
}

// RegisterArtifactRequest is posted by the external template editor.
// ID is set when the editor already assigned one.
type RegisterArtifactRequest struct {
	ID      *uuid.UUID `json:"id,omitempty"`
	Kind    string     `json:"kind" binding:"required"`
	Content string     `json:"content" binding:"required"`
}

func (r RegisterArtifactRequest) ToCommand() (commands.RegisterArtifactRequest, error) {
	kind, err := artifact.ParseKind(r.Kind)
	if err != nil {
		return commands.RegisterArtifactRequest{}, errs.Validation(err)
	}
	return commands.RegisterArtifactRequest{ID: r.ID, Kind: kind, Content: r.Content}, nil
}

type PromoteRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

func (r PromoteRequest) ToCommand() commands.PromoteRequest {
	return commands.PromoteRequest{Name: r.Name, Description: r.Description}
}
