package response

import (
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/domain/savedconfig"
	"pass-config-engine/internal/usecase/commands"
	"pass-config-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BreakdownResponse struct {
	Base           string `json:"base"`
	WithCommission string `json:"with_commission"`
	Tax            string `json:"tax"`
	Final          string `json:"final"`
}

func fromBreakdown(b pricing.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Base:           b.Base.String(),
		WithCommission: b.WithCommission.String(),
		Tax:            b.Tax.String(),
		Final:          b.DisplayString(),
	}
}

type PriceSnapshotResponse struct {
	Guests    int               `json:"guests"`
	Days      int               `json:"days"`
	Breakdown BreakdownResponse `json:"breakdown"`
}

type TemplateIDsResponse struct {
	Welcome *string `json:"welcome,omitempty"`
	Rebuy   *string `json:"rebuy,omitempty"`
	Landing *string `json:"landing,omitempty"`
}

type URLSnapshotResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
}

type ConfigurationResponse struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Description      string                `json:"description"`
	PricingMode      string                `json:"pricing_mode"`
	DeliveryMethod   string                `json:"delivery_method"`
	Dimensions       DimensionsResponse    `json:"dimensions"`
	Templates        TemplateIDsResponse   `json:"templates"`
	Artifacts        []ArtifactRefResponse `json:"artifacts"`
	URLs             []URLSnapshotResponse `json:"urls"`
	URLMap           map[string]string     `json:"url_map"`
	Price            PriceSnapshotResponse `json:"price"`
	AssignedSellerID *string               `json:"assigned_seller_id"`
	CreatedAt        int64                 `json:"created_at"`
	UpdatedAt        int64                 `json:"updated_at"`
}

func FromConfiguration(c *savedconfig.SavedConfiguration) *ConfigurationResponse {
	urls := c.URLs()
	snaps := make([]URLSnapshotResponse, len(urls))
	for i, u := range urls {
		snaps[i] = URLSnapshotResponse{ID: u.ID.String(), Name: u.Name, URL: u.Address, Description: u.Description}
	}
	t := c.Templates()
	price := c.Price()
	return &ConfigurationResponse{
		ID:             c.ID().String(),
		Name:           c.Name(),
		Description:    c.Description(),
		PricingMode:    string(c.PricingMode()),
		DeliveryMethod: string(c.Delivery()),
		Dimensions:     FromDimensions(c.Dimensions()),
		Templates: TemplateIDsResponse{
			Welcome: uuidString(t.Welcome),
			Rebuy:   uuidString(t.Rebuy),
			Landing: uuidString(t.Landing),
		},
		Artifacts: fromRefs(c.Artifacts()),
		URLs:      snaps,
		URLMap:    c.URLMap(),
		Price: PriceSnapshotResponse{
			Guests:    price.Guests,
			Days:      price.Days,
			Breakdown: fromBreakdown(price.Breakdown),
		},
		AssignedSellerID: uuidString(c.AssignedSellerID()),
		CreatedAt:        c.CreatedAt().Unix(),
		UpdatedAt:        c.UpdatedAt().Unix(),
	}
}

type ConfigurationListItemResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	PricingMode      string  `json:"pricing_mode"`
	DeliveryMethod   string  `json:"delivery_method"`
	FinalPrice       string  `json:"final_price"`
	AssignedSellerID *string `json:"assigned_seller_id"`
	CreatedAt        int64   `json:"created_at"`
	UpdatedAt        int64   `json:"updated_at"`
}

type ConfigurationPageResponse struct {
	Items    []*ConfigurationListItemResponse `json:"items"`
	Page     int                              `json:"page"`
	PageSize int                              `json:"page_size"`
	Total    int64                            `json:"total"`
	HasNext  bool                             `json:"has_next"`
}

func FromConfigurationPage(p *queries.Page[*queries.ConfigurationListItem]) *ConfigurationPageResponse {
	items := make([]*ConfigurationListItemResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = &ConfigurationListItemResponse{
			ID:               it.ID.String(),
			Name:             it.Name,
			Description:      it.Description,
			PricingMode:      string(it.PricingMode),
			DeliveryMethod:   string(it.DeliveryMethod),
			FinalPrice:       it.FinalPrice.StringFixed(pricing.DisplayPlaces),
			AssignedSellerID: uuidString(it.AssignedSellerID),
			CreatedAt:        it.CreatedAt.Unix(),
			UpdatedAt:        it.UpdatedAt.Unix(),
		}
	}
	return &ConfigurationPageResponse{
		Items:    items,
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    p.Total,
		HasNext:  p.HasNext(),
	}
}

type PromotionResponse struct {
	Configuration  *ConfigurationResponse `json:"configuration"`
	NewSessionID   string                 `json:"new_session_id"`
	ArtifactsFreed int64                  `json:"artifacts_freed"`
	URLsReleased   int64                  `json:"urls_released"`
}

func FromPromotionResult(r *commands.PromotionResult) *PromotionResponse {
	return &PromotionResponse{
		Configuration:  FromConfiguration(r.Configuration),
		NewSessionID:   r.NewSessionID,
		ArtifactsFreed: r.ArtifactsFreed,
		URLsReleased:   r.URLsReleased,
	}
}

type BulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}

type SellerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
}

func FromSellers(sellers []*queries.SellerView) []*SellerResponse {
	res := make([]*SellerResponse, len(sellers))
	for i, s := range sellers {
		res[i] = &SellerResponse{
			ID:        s.ID.String(),
			Name:      s.Name,
			Email:     s.Email,
			CreatedAt: s.CreatedAt.Unix(),
		}
	}
	return res
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
