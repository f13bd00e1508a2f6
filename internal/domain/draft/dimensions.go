package draft

import (
	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/pkg/ptr"
)

type LimitSetting struct {
	Locked       bool
	DefaultValue int
	RangeMax     int
}

func (s LimitSetting) validate(upper int, tooLarge error) error {
	if s.RangeMax > upper {
		return tooLarge
	}
	if s.DefaultValue < 1 || s.DefaultValue > s.RangeMax {
		return ErrLimitDefaultOutOfRange
	}
	return nil
}

// Limits is dimension 1. Confirmed is set only by an explicit operator save.
type Limits struct {
	Guests    LimitSetting
	Days      LimitSetting
	Confirmed bool
}

func (l Limits) Validate() error {
	if err := l.Guests.validate(MaxGuestsRange, ErrGuestsRangeTooLarge); err != nil {
		return err
	}
	return l.Days.validate(MaxDaysRange, ErrDaysRangeTooLarge)
}

func DefaultLimits() Limits {
	return Limits{
		Guests: LimitSetting{DefaultValue: 1, RangeMax: MaxGuestsRange},
		Days:   LimitSetting{DefaultValue: 1, RangeMax: pricing.MaxPreviewDays},
	}
}

// Delivery is dimension 3.
type Delivery struct {
	Method             DeliveryMethod
	LandingPage        LandingPageChoice
	LandingTemplate    *artifact.Ref
	HasRegistryContent bool
}

// WelcomeEmail is dimension 4. Template is set only for the default choice.
type WelcomeEmail struct {
	UseCustomTemplate *bool
	Template          *artifact.Ref
}

// RebuyEmail is dimension 5.
type RebuyEmail struct {
	Enabled           *bool
	UseCustomTemplate *bool
	Template          *artifact.Ref
}

// FutureQR is dimension 6.
type FutureQR struct {
	Allowed *bool
}

// Dimensions holds the six configuration dimensions of a draft.
type Dimensions struct {
	Limits   Limits
	Pricing  pricing.Params
	Delivery Delivery
	Welcome  WelcomeEmail
	Rebuy    RebuyEmail
	FutureQR FutureQR
}

func DefaultDimensions() Dimensions {
	return Dimensions{Limits: DefaultLimits()}
}

// Clone returns a copy that shares no pointers with d.
func (d Dimensions) Clone() Dimensions {
	c := d
	c.Delivery.LandingTemplate = ptr.Clone(d.Delivery.LandingTemplate)
	c.Welcome.UseCustomTemplate = ptr.Clone(d.Welcome.UseCustomTemplate)
	c.Welcome.Template = ptr.Clone(d.Welcome.Template)
	c.Rebuy.Enabled = ptr.Clone(d.Rebuy.Enabled)
	c.Rebuy.UseCustomTemplate = ptr.Clone(d.Rebuy.UseCustomTemplate)
	c.Rebuy.Template = ptr.Clone(d.Rebuy.Template)
	c.FutureQR.Allowed = ptr.Clone(d.FutureQR.Allowed)
	return c
}
