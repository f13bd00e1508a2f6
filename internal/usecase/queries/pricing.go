package queries

import (
	"context"

	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/pkg/errs"
)

var ErrQuantityOutOfRange = errs.New("guests or days exceed the configuration limits")

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing.go -package=queriesmock

// DraftSource reads the current state of a session's draft.
type DraftSource interface {
	Pull(ctx context.Context, sessionID string) (*draft.Draft, error)
}

type PricingQueries interface {
	// Preview prices every guest/day combination the draft's limits allow.
	Preview(ctx context.Context, sessionID string) (*PricePreview, error)
	// Quote prices an issuance against a saved configuration with the same
	// calculator the preview uses.
	Quote(ctx context.Context, req QuoteRequest) (*Quote, error)
}

type pricingQueriesImpl struct {
	drafts  DraftSource
	configs SavedConfigReadStore
	calc    pricing.Calculator
}

func NewPricingQueries(drafts DraftSource, configs SavedConfigReadStore, calc pricing.Calculator) PricingQueries {
	return &pricingQueriesImpl{drafts: drafts, configs: configs, calc: calc}
}

func (q *pricingQueriesImpl) Preview(ctx context.Context, sessionID string) (*PricePreview, error) {
	d, err := q.drafts.Pull(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	limits := d.Limits()
	params := d.Pricing()
	m, err := pricing.PreviewMatrix(q.calc, params, limits.Guests.RangeMax, limits.Days.RangeMax)
	if err != nil {
		return nil, errs.Validation(err)
	}
	return &PricePreview{
		SessionID:     sessionID,
		Params:        params,
		Matrix:        m,
		DefaultGuests: limits.Guests.DefaultValue,
		DefaultDays:   limits.Days.DefaultValue,
	}, nil
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	cfg, err := findConfiguration(ctx, q.configs, req.ConfigurationID)
	if err != nil {
		return nil, err
	}

	limits := cfg.Dimensions().Limits
	if req.Guests > limits.Guests.RangeMax || req.Days > limits.Days.RangeMax {
		return nil, errs.Validation(ErrQuantityOutOfRange)
	}

	bd, err := q.calc.Calculate(cfg.Dimensions().Pricing, req.Guests, req.Days)
	if err != nil {
		return nil, errs.Validation(err)
	}
	return &Quote{
		ConfigurationID: cfg.ID(),
		Guests:          req.Guests,
		Days:            req.Days,
		Breakdown:       bd,
	}, nil
}
