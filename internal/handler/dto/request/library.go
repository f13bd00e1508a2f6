package request

import (
	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// ListConfigurationsQuery binds the library listing query string.
type ListConfigurationsQuery struct {
	Search         string `form:"q"`
	PricingMode    string `form:"pricing_mode"`
	DeliveryMethod string `form:"delivery_method"`
	Assigned       *bool  `form:"assigned"`
	OrderBy        string `form:"order_by"`
	Page           int    `form:"page" binding:"omitempty,min=1,max=1000000"`
	PageSize       int    `form:"page_size" binding:"omitempty,min=1"`
}

func (q ListConfigurationsQuery) Filter() (queries.LibraryFilter, error) {
	f := queries.LibraryFilter{SearchText: q.Search, Assigned: q.Assigned}
	if q.PricingMode != "" {
		m, err := pricing.ParseMode(q.PricingMode)
		if err != nil {
			return queries.LibraryFilter{}, errs.Validation(err)
		}
		f.PricingMode = &m
	}
	if q.DeliveryMethod != "" {
		m, err := draft.ParseDeliveryMethod(q.DeliveryMethod)
		if err != nil {
			return queries.LibraryFilter{}, errs.Validation(err)
		}
		f.DeliveryMethod = &m
	}
	return f, nil
}

type UpdateConfigurationRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

type AssignRequest struct {
	SellerID uuid.UUID `json:"seller_id" binding:"required"`
}

type QuoteRequest struct {
	ConfigurationID uuid.UUID `json:"configuration_id" binding:"required"`
	Guests          int       `json:"guests" binding:"required,min=1"`
	Days            int       `json:"days" binding:"required,min=1"`
}

func (r QuoteRequest) ToQuery() queries.QuoteRequest {
	return queries.QuoteRequest{ConfigurationID: r.ConfigurationID, Guests: r.Guests, Days: r.Days}
}
