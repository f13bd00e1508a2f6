package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// draftRecordVersion is bumped when the stored layout changes incompatibly.
const draftRecordVersion = 1

// DraftRecord is the stored form of a draft, shared by the drafts table and
// the local cache. Completed is informational only; loading recomputes it.
type DraftRecord struct {
	Version    int              `json:"version"`
	SessionID  string           `json:"session_id"`
	Dimensions DimensionsRecord `json:"dimensions"`
	Artifacts  []RefRecord      `json:"artifacts"`
	Completed  []int            `json:"completed"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type RefRecord struct {
	ID     uuid.UUID `json:"id"`
	Kind   string    `json:"kind"`
	Origin string    `json:"origin"`
}

type LimitRecord struct {
	Locked       bool `json:"locked"`
	DefaultValue int  `json:"default_value"`
	RangeMax     int  `json:"range_max"`
}

type PricingRecord struct {
	Mode              string          `json:"mode,omitempty"`
	Price             decimal.Decimal `json:"price"`
	BasePrice         decimal.Decimal `json:"base_price"`
	PerGuestIncrement decimal.Decimal `json:"per_guest_increment"`
	PerDayIncrement   decimal.Decimal `json:"per_day_increment"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	TaxEnabled        bool            `json:"tax_enabled"`
	TaxPercent        decimal.Decimal `json:"tax_percent"`
}

type DimensionsRecord struct {
	Limits struct {
		Guests    LimitRecord `json:"guests"`
		Days      LimitRecord `json:"days"`
		Confirmed bool        `json:"confirmed"`
	} `json:"limits"`
	Pricing  PricingRecord `json:"pricing"`
	Delivery struct {
		Method             string     `json:"method,omitempty"`
		LandingPage        string     `json:"landing_page,omitempty"`
		LandingTemplate    *RefRecord `json:"landing_template,omitempty"`
		HasRegistryContent bool       `json:"has_registry_content"`
	} `json:"delivery"`
	Welcome struct {
		UseCustomTemplate *bool      `json:"use_custom_template,omitempty"`
		Template          *RefRecord `json:"template,omitempty"`
	} `json:"welcome"`
	Rebuy struct {
		Enabled           *bool      `json:"enabled,omitempty"`
		UseCustomTemplate *bool      `json:"use_custom_template,omitempty"`
		Template          *RefRecord `json:"template,omitempty"`
	} `json:"rebuy"`
	FutureQR struct {
		Allowed *bool `json:"allowed,omitempty"`
	} `json:"future_qr"`
}

func DraftToRecord(d *draft.Draft) DraftRecord {
	return DraftRecord{
		Version:    draftRecordVersion,
		SessionID:  d.SessionID(),
		Dimensions: DimensionsToRecord(d.Dimensions()),
		Artifacts:  RefsToRecords(d.Artifacts()),
		Completed:  d.Completed().Slice(),
		UpdatedAt:  d.UpdatedAt().UTC(),
	}
}

func DraftFromRecord(rec DraftRecord) (*draft.Draft, error) {
	if rec.Version > draftRecordVersion {
		return nil, fmt.Errorf("unsupported draft record version %d", rec.Version)
	}
	dims, err := DimensionsFromRecord(rec.Dimensions)
	if err != nil {
		return nil, err
	}
	refs, err := RefsFromRecords(rec.Artifacts)
	if err != nil {
		return nil, err
	}
	return draft.Reconstruct(rec.SessionID, dims, refs, rec.UpdatedAt), nil
}

func DraftToJSON(d *draft.Draft) ([]byte, error) {
	return json.Marshal(DraftToRecord(d))
}

func DraftFromJSON(data []byte) (*draft.Draft, error) {
	var rec DraftRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode draft record: %w", err)
	}
	return DraftFromRecord(rec)
}

func DimensionsToRecord(d draft.Dimensions) DimensionsRecord {
	var rec DimensionsRecord
	rec.Limits.Guests = LimitRecord(d.Limits.Guests)
	rec.Limits.Days = LimitRecord(d.Limits.Days)
	rec.Limits.Confirmed = d.Limits.Confirmed

	p := d.Pricing
	rec.Pricing = PricingRecord{
		Mode:              string(p.Mode),
		Price:             p.Price,
		BasePrice:         p.BasePrice,
		PerGuestIncrement: p.PerGuestIncrement,
		PerDayIncrement:   p.PerDayIncrement,
		CommissionPercent: p.CommissionPercent,
		TaxEnabled:        p.TaxEnabled,
		TaxPercent:        p.TaxPercent,
	}

	rec.Delivery.Method = string(d.Delivery.Method)
	rec.Delivery.LandingPage = string(d.Delivery.LandingPage)
	rec.Delivery.LandingTemplate = refToRecordPtr(d.Delivery.LandingTemplate)
	rec.Delivery.HasRegistryContent = d.Delivery.HasRegistryContent

	rec.Welcome.UseCustomTemplate = d.Welcome.UseCustomTemplate
	rec.Welcome.Template = refToRecordPtr(d.Welcome.Template)

	rec.Rebuy.Enabled = d.Rebuy.Enabled
	rec.Rebuy.UseCustomTemplate = d.Rebuy.UseCustomTemplate
	rec.Rebuy.Template = refToRecordPtr(d.Rebuy.Template)

	rec.FutureQR.Allowed = d.FutureQR.Allowed
	return rec
}

func DimensionsFromRecord(rec DimensionsRecord) (draft.Dimensions, error) {
	d := draft.DefaultDimensions()
	d.Limits = draft.Limits{
		Guests:    draft.LimitSetting(rec.Limits.Guests),
		Days:      draft.LimitSetting(rec.Limits.Days),
		Confirmed: rec.Limits.Confirmed,
	}

	if rec.Pricing.Mode != "" {
		mode, err := pricing.ParseMode(rec.Pricing.Mode)
		if err != nil {
			return d, err
		}
		d.Pricing.Mode = mode
	}
	d.Pricing.Price = rec.Pricing.Price
	d.Pricing.BasePrice = rec.Pricing.BasePrice
	d.Pricing.PerGuestIncrement = rec.Pricing.PerGuestIncrement
	d.Pricing.PerDayIncrement = rec.Pricing.PerDayIncrement
	d.Pricing.CommissionPercent = rec.Pricing.CommissionPercent
	d.Pricing.TaxEnabled = rec.Pricing.TaxEnabled
	d.Pricing.TaxPercent = rec.Pricing.TaxPercent

	if rec.Delivery.Method != "" {
		m, err := draft.ParseDeliveryMethod(rec.Delivery.Method)
		if err != nil {
			return d, err
		}
		d.Delivery.Method = m
	}
	if rec.Delivery.LandingPage != "" {
		lp, err := draft.ParseLandingPageChoice(rec.Delivery.LandingPage)
		if err != nil {
			return d, err
		}
		d.Delivery.LandingPage = lp
	}
	var err error
	if d.Delivery.LandingTemplate, err = refFromRecordPtr(rec.Delivery.LandingTemplate); err != nil {
		return d, err
	}
	d.Delivery.HasRegistryContent = rec.Delivery.HasRegistryContent

	d.Welcome.UseCustomTemplate = rec.Welcome.UseCustomTemplate
	if d.Welcome.Template, err = refFromRecordPtr(rec.Welcome.Template); err != nil {
		return d, err
	}

	d.Rebuy.Enabled = rec.Rebuy.Enabled
	d.Rebuy.UseCustomTemplate = rec.Rebuy.UseCustomTemplate
	if d.Rebuy.Template, err = refFromRecordPtr(rec.Rebuy.Template); err != nil {
		return d, err
	}

	d.FutureQR.Allowed = rec.FutureQR.Allowed
	return d, nil
}

func RefsToRecords(refs []artifact.Ref) []RefRecord {
	out := make([]RefRecord, 0, len(refs))
	for _, r := range refs {
		out = append(out, RefRecord{ID: r.ID, Kind: string(r.Kind), Origin: string(r.Origin)})
	}
	return out
}

func RefsFromRecords(recs []RefRecord) ([]artifact.Ref, error) {
	out := make([]artifact.Ref, 0, len(recs))
	for _, rec := range recs {
		ref, err := refFromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

func refFromRecord(rec RefRecord) (artifact.Ref, error) {
	kind, err := artifact.ParseKind(rec.Kind)
	if err != nil {
		return artifact.Ref{}, err
	}
	origin, err := ParseOrigin(rec.Origin)
	if err != nil {
		return artifact.Ref{}, err
	}
	return artifact.Ref{ID: rec.ID, Kind: kind, Origin: origin}, nil
}

func ParseOrigin(s string) (artifact.Origin, error) {
	switch o := artifact.Origin(s); o {
	case artifact.OriginDefault, artifact.OriginCustom:
		return o, nil
	default:
		return "", artifact.ErrUnknownOrigin
	}
}

func refToRecordPtr(r *artifact.Ref) *RefRecord {
	if r == nil {
		return nil
	}
	return &RefRecord{ID: r.ID, Kind: string(r.Kind), Origin: string(r.Origin)}
}

func refFromRecordPtr(rec *RefRecord) (*artifact.Ref, error) {
	if rec == nil {
		return nil, nil
	}
	ref, err := refFromRecord(*rec)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
