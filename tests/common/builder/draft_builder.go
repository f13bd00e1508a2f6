//go:build unit || integration || e2e

package builder

import (
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DraftBuilder assembles drafts through the same mutations an operator performs.
type DraftBuilder struct {
	SessionID      string
	Now            time.Time
	Limits         *draft.Limits
	Pricing        *pricing.Params
	Delivery       draft.DeliveryMethod
	LandingPage    draft.LandingPageChoice
	WelcomeCustom  *bool
	RebuyEnabled   *bool
	RebuyCustom    *bool
	FutureQR       *bool
	CustomUploads  []artifact.Ref
	RegistryFilled bool
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		SessionID: uuid.NewString(),
		Now:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

// Complete configures all six dimensions using default templates.
func (b *DraftBuilder) Complete() *DraftBuilder {
	limits := GoldPlanLimits()
	p := GoldPlanPricing()
	b.Limits = &limits
	b.Pricing = &p
	b.Delivery = draft.DeliveryURLs
	b.LandingPage = draft.LandingPageDefault
	b.WelcomeCustom = boolPtr(false)
	b.RebuyEnabled = boolPtr(false)
	b.FutureQR = boolPtr(true)
	return b
}

func (b *DraftBuilder) WithSessionID(id string) *DraftBuilder {
	b.SessionID = id
	return b
}

func (b *DraftBuilder) WithDelivery(m draft.DeliveryMethod, landing draft.LandingPageChoice) *DraftBuilder {
	b.Delivery = m
	b.LandingPage = landing
	return b
}

func (b *DraftBuilder) WithPricing(p pricing.Params) *DraftBuilder {
	b.Pricing = &p
	return b
}

func (b *DraftBuilder) WithoutFutureQR() *DraftBuilder {
	b.FutureQR = nil
	return b
}

func (b *DraftBuilder) WithCustomWelcome(uploaded bool) *DraftBuilder {
	b.WelcomeCustom = boolPtr(true)
	if uploaded {
		b.CustomUploads = append(b.CustomUploads, CustomRef(artifact.KindWelcome))
	}
	return b
}

func (b *DraftBuilder) WithRebuy(enabled bool, custom *bool) *DraftBuilder {
	b.RebuyEnabled = &enabled
	b.RebuyCustom = custom
	return b
}

func (b *DraftBuilder) Build() (*draft.Draft, error) {
	d, err := draft.New(b.SessionID, b.Now)
	if err != nil {
		return nil, err
	}
	if b.Limits != nil {
		if err := d.ConfigureLimits(*b.Limits, b.Now); err != nil {
			return nil, err
		}
	}
	if b.Pricing != nil {
		if err := d.SetPricing(*b.Pricing, b.Now); err != nil {
			return nil, err
		}
	}
	if b.Delivery != "" {
		if _, err := d.SetDeliveryMethod(b.Delivery, b.Now); err != nil {
			return nil, err
		}
		if b.LandingPage != draft.LandingPageUnset {
			if err := d.ChooseLandingPage(b.LandingPage, DefaultRef(artifact.KindLanding), b.Now); err != nil {
				return nil, err
			}
		}
	}
	if b.RegistryFilled {
		d.MarkRegistryContent(b.Now)
	}
	if b.WelcomeCustom != nil {
		if err := d.ChooseWelcomeTemplate(*b.WelcomeCustom, DefaultRef(artifact.KindWelcome), b.Now); err != nil {
			return nil, err
		}
	}
	if b.RebuyEnabled != nil {
		if err := d.ConfigureRebuy(*b.RebuyEnabled, b.RebuyCustom, DefaultRef(artifact.KindRebuy), b.Now); err != nil {
			return nil, err
		}
	}
	if b.FutureQR != nil {
		d.SetFutureQR(*b.FutureQR, b.Now)
	}
	if len(b.CustomUploads) > 0 {
		d.MergeArtifacts(b.CustomUploads, b.Now)
	}
	return d, nil
}

func (b *DraftBuilder) MustBuild() *draft.Draft {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

// GoldPlanLimits: guests default 4 of max 10, days default 1 of max 7.
func GoldPlanLimits() draft.Limits {
	return draft.Limits{
		Guests: draft.LimitSetting{DefaultValue: 4, RangeMax: 10},
		Days:   draft.LimitSetting{DefaultValue: 1, RangeMax: 7},
	}
}

// GoldPlanPricing: FIXED 20 with 8% tax.
func GoldPlanPricing() pricing.Params {
	return pricing.Params{
		Mode:       pricing.ModeFixed,
		Price:      decimal.NewFromInt(20),
		TaxEnabled: true,
		TaxPercent: decimal.NewFromInt(8),
	}
}

func DefaultRef(kind artifact.Kind) *artifact.Ref {
	return &artifact.Ref{ID: uuid.New(), Kind: kind, Origin: artifact.OriginDefault}
}

func CustomRef(kind artifact.Kind) artifact.Ref {
	return artifact.Ref{ID: uuid.New(), Kind: kind, Origin: artifact.OriginCustom}
}

func boolPtr(v bool) *bool { return &v }
