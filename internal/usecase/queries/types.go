package queries

import (
	"time"

	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type ConfigurationListItem struct {
	ID               uuid.UUID
	Name             string
	Description      string
	PricingMode      pricing.Mode
	DeliveryMethod   draft.DeliveryMethod
	FinalPrice       decimal.Decimal
	AssignedSellerID *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type SellerView struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

// LibraryFilter narrows the saved configuration listing. Nil fields match everything.
type LibraryFilter struct {
	SearchText     string
	PricingMode    *pricing.Mode
	DeliveryMethod *draft.DeliveryMethod
	Assigned       *bool
}

type SortField string

const (
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "created_at"
	SortByPrice     SortField = "price"
)

type LibrarySort struct {
	Field SortField
	Desc  bool
}

// DefaultLibrarySort lists the newest configurations first.
var DefaultLibrarySort = LibrarySort{Field: SortByCreatedAt, Desc: true}

type PricePreview struct {
	SessionID     string
	Params        pricing.Params
	Matrix        pricing.Matrix
	DefaultGuests int
	DefaultDays   int
}

type QuoteRequest struct {
	ConfigurationID uuid.UUID
	Guests          int
	Days            int
}

type Quote struct {
	ConfigurationID uuid.UUID
	Guests          int
	Days            int
	Breakdown       pricing.Breakdown
}
