package savedconfig

import (
	"errors"
	"strings"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/domain/tempurl"
	"pass-config-engine/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 2000
)

var (
	ErrDraftIncomplete     = errors.New("all six dimensions must be complete before saving")
	ErrNameRequired        = errors.New("configuration name is required")
	ErrNameTooLong         = errors.New("configuration name exceeds maximum length")
	ErrDescriptionTooLong  = errors.New("configuration description exceeds maximum length")
	ErrAssignedElsewhere   = errors.New("configuration is already assigned to another seller")
	ErrArtifactNotRemapped = errors.New("snapshot references an artifact that was not copied")
)

// URLSnapshot is a registry record frozen at promotion time.
type URLSnapshot struct {
	ID          uuid.UUID
	Name        string
	Address     *string
	Description *string
}

// TemplateIDs are the artifacts the configuration is bound to.
type TemplateIDs struct {
	Welcome *uuid.UUID
	Rebuy   *uuid.UUID
	Landing *uuid.UUID
}

func (t TemplateIDs) All() []uuid.UUID {
	var out []uuid.UUID
	for _, id := range []*uuid.UUID{t.Welcome, t.Rebuy, t.Landing} {
		if id != nil {
			out = append(out, *id)
		}
	}
	return out
}

// PriceSnapshot is the price at the D1 default quantities.
type PriceSnapshot struct {
	Guests    int
	Days      int
	Breakdown pricing.Breakdown
}

func (p PriceSnapshot) Final() decimal.Decimal { return p.Breakdown.Display() }

// SavedConfiguration is an immutable snapshot of a completed draft. Only
// metadata and the seller assignment change after creation.
type SavedConfiguration struct {
	id               uuid.UUID
	name             string
	description      string
	dimensions       draft.Dimensions
	urls             []URLSnapshot
	templates        TemplateIDs
	artifacts        []artifact.Ref
	price            PriceSnapshot
	assignedSellerID *uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

// FromDraft builds the snapshot a promotion persists.
func FromDraft(d *draft.Draft, name, description string, urls []*tempurl.URL, calc pricing.Calculator, now time.Time) (*SavedConfiguration, error) {
	if !d.AllComplete() {
		return nil, ErrDraftIncomplete
	}
	n, desc, err := normalizeMetadata(name, description)
	if err != nil {
		return nil, err
	}

	dims, err := deepCopy(d.Dimensions())
	if err != nil {
		return nil, err
	}

	limits := dims.Limits
	bd, err := calc.Calculate(dims.Pricing, limits.Guests.DefaultValue, limits.Days.DefaultValue)
	if err != nil {
		return nil, err
	}

	welcome, rebuy, landing := d.TemplateIDs()
	templates := TemplateIDs{
		Welcome: refID(welcome),
		Rebuy:   refID(rebuy),
		Landing: refID(landing),
	}

	var linked []artifact.Ref
	for _, ref := range []*artifact.Ref{welcome, rebuy, landing} {
		if ref != nil {
			linked = append(linked, *ref)
		}
	}

	snaps := make([]URLSnapshot, 0, len(urls))
	if dims.Delivery.Method.UsesURLs() {
		for _, u := range urls {
			snaps = append(snaps, URLSnapshot{
				ID:          u.ID(),
				Name:        u.Name(),
				Address:     ptr.Clone(u.Address()),
				Description: ptr.Clone(u.Description()),
			})
		}
	}

	return &SavedConfiguration{
		id:          uuid.New(),
		name:        n,
		description: desc,
		dimensions:  dims,
		urls:        snaps,
		templates:   templates,
		artifacts:   linked,
		price: PriceSnapshot{
			Guests:    limits.Guests.DefaultValue,
			Days:      limits.Days.DefaultValue,
			Breakdown: bd,
		},
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, description string,
	dims draft.Dimensions,
	urls []URLSnapshot,
	templates TemplateIDs,
	artifacts []artifact.Ref,
	price PriceSnapshot,
	assignedSellerID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *SavedConfiguration {
	return &SavedConfiguration{
		id:               id,
		name:             name,
		description:      description,
		dimensions:       dims.Clone(),
		urls:             urls,
		templates:        templates,
		artifacts:        artifacts,
		price:            price,
		assignedSellerID: assignedSellerID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (c *SavedConfiguration) ID() uuid.UUID                  { return c.id }
func (c *SavedConfiguration) Name() string                   { return c.name }
func (c *SavedConfiguration) Description() string            { return c.description }
func (c *SavedConfiguration) Dimensions() draft.Dimensions   { return c.dimensions.Clone() }
func (c *SavedConfiguration) Templates() TemplateIDs         { return c.templates }
func (c *SavedConfiguration) Price() PriceSnapshot           { return c.price }
func (c *SavedConfiguration) AssignedSellerID() *uuid.UUID   { return c.assignedSellerID }
func (c *SavedConfiguration) CreatedAt() time.Time           { return c.createdAt }
func (c *SavedConfiguration) UpdatedAt() time.Time           { return c.updatedAt }
func (c *SavedConfiguration) PricingMode() pricing.Mode      { return c.dimensions.Pricing.Mode }
func (c *SavedConfiguration) Delivery() draft.DeliveryMethod { return c.dimensions.Delivery.Method }

func (c *SavedConfiguration) URLs() []URLSnapshot {
	out := make([]URLSnapshot, len(c.urls))
	copy(out, c.urls)
	return out
}

func (c *SavedConfiguration) Artifacts() []artifact.Ref {
	out := make([]artifact.Ref, len(c.artifacts))
	copy(out, c.artifacts)
	return out
}

// URLMap maps registry names to filled addresses. Placeholders without an
// address are left out.
func (c *SavedConfiguration) URLMap() map[string]string {
	m := make(map[string]string, len(c.urls))
	for _, u := range c.urls {
		if u.Address != nil {
			m[u.Name] = *u.Address
		}
	}
	return m
}

func (c *SavedConfiguration) UpdateMetadata(name, description string, now time.Time) error {
	n, desc, err := normalizeMetadata(name, description)
	if err != nil {
		return err
	}
	c.name = n
	c.description = desc
	c.updatedAt = now
	return nil
}

// AssignTo binds the configuration to sellerID. Reassigning to the same seller is a no-op.
func (c *SavedConfiguration) AssignTo(sellerID uuid.UUID, now time.Time) error {
	if c.assignedSellerID != nil {
		if *c.assignedSellerID == sellerID {
			return nil
		}
		return ErrAssignedElsewhere
	}
	c.assignedSellerID = &sellerID
	c.updatedAt = now
	return nil
}

// ToDraft rebuilds an editable draft for sessionID. remap translates each linked
// artifact id to the copy made for the new session.
func (c *SavedConfiguration) ToDraft(sessionID string, remap map[uuid.UUID]artifact.Ref, now time.Time) (*draft.Draft, error) {
	dims, err := deepCopy(c.dimensions)
	if err != nil {
		return nil, err
	}
	for _, p := range []**artifact.Ref{&dims.Delivery.LandingTemplate, &dims.Welcome.Template, &dims.Rebuy.Template} {
		if *p == nil {
			continue
		}
		moved, ok := remap[(*p).ID]
		if !ok {
			return nil, ErrArtifactNotRemapped
		}
		*p = &moved
	}

	refs := make([]artifact.Ref, 0, len(c.artifacts))
	for _, a := range c.artifacts {
		moved, ok := remap[a.ID]
		if !ok {
			return nil, ErrArtifactNotRemapped
		}
		refs = append(refs, moved)
	}
	return draft.Reconstruct(sessionID, dims, refs, now), nil
}

func normalizeMetadata(name, description string) (string, string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", "", ErrNameRequired
	}
	if len(n) > MaxNameLength {
		return "", "", ErrNameTooLong
	}
	desc := strings.TrimSpace(description)
	if len(desc) > MaxDescriptionLength {
		return "", "", ErrDescriptionTooLong
	}
	return n, desc, nil
}

func refID(r *artifact.Ref) *uuid.UUID {
	if r == nil {
		return nil
	}
	id := r.ID
	return &id
}

// decimal.Decimal keeps its state in unexported fields, so copier needs an
// explicit identity conversion to carry amounts across.
var decimalIdentity = copier.TypeConverter{
	SrcType: decimal.Decimal{},
	DstType: decimal.Decimal{},
	Fn: func(src interface{}) (interface{}, error) {
		return src.(decimal.Decimal), nil
	},
}

func deepCopy(src draft.Dimensions) (draft.Dimensions, error) {
	var dst draft.Dimensions
	err := copier.CopyWithOption(&dst, &src, copier.Option{
		DeepCopy:   true,
		Converters: []copier.TypeConverter{decimalIdentity},
	})
	return dst, err
}
