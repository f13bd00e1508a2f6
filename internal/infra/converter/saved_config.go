package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/domain/savedconfig"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SnapshotRecord is the snapshot column of saved_configurations.
type SnapshotRecord struct {
	Dimensions DimensionsRecord `json:"dimensions"`
	Price      PriceRecord      `json:"price"`
}

type PriceRecord struct {
	Guests         int             `json:"guests"`
	Days           int             `json:"days"`
	Base           decimal.Decimal `json:"base"`
	WithCommission decimal.Decimal `json:"with_commission"`
	Tax            decimal.Decimal `json:"tax"`
	Final          decimal.Decimal `json:"final"`
}

type URLRecord struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     *string   `json:"url,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// SavedConfigRow carries the encoded columns of one saved configuration.
type SavedConfigRow struct {
	ID                uuid.UUID
	Name              string
	Description       string
	PricingMode       string
	DeliveryMethod    string
	FinalPrice        decimal.Decimal
	Snapshot          []byte
	URLs              []byte
	URLMap            []byte
	WelcomeTemplateID *uuid.UUID
	RebuyTemplateID   *uuid.UUID
	LandingTemplateID *uuid.UUID
	AssignedSellerID  *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func SavedConfigToRow(cfg *savedconfig.SavedConfiguration) (SavedConfigRow, error) {
	price := cfg.Price()
	snapshot, err := json.Marshal(SnapshotRecord{
		Dimensions: DimensionsToRecord(cfg.Dimensions()),
		Price: PriceRecord{
			Guests:         price.Guests,
			Days:           price.Days,
			Base:           price.Breakdown.Base,
			WithCommission: price.Breakdown.WithCommission,
			Tax:            price.Breakdown.Tax,
			Final:          price.Breakdown.Final,
		},
	})
	if err != nil {
		return SavedConfigRow{}, fmt.Errorf("failed to encode configuration snapshot: %w", err)
	}

	snaps := cfg.URLs()
	urls := make([]URLRecord, 0, len(snaps))
	for _, u := range snaps {
		urls = append(urls, URLRecord(u))
	}
	urlsJSON, err := json.Marshal(urls)
	if err != nil {
		return SavedConfigRow{}, fmt.Errorf("failed to encode configuration urls: %w", err)
	}
	urlMap, err := json.Marshal(cfg.URLMap())
	if err != nil {
		return SavedConfigRow{}, fmt.Errorf("failed to encode configuration url map: %w", err)
	}

	t := cfg.Templates()
	return SavedConfigRow{
		ID:                cfg.ID(),
		Name:              cfg.Name(),
		Description:       cfg.Description(),
		PricingMode:       string(cfg.PricingMode()),
		DeliveryMethod:    string(cfg.Delivery()),
		FinalPrice:        price.Final(),
		Snapshot:          snapshot,
		URLs:              urlsJSON,
		URLMap:            urlMap,
		WelcomeTemplateID: t.Welcome,
		RebuyTemplateID:   t.Rebuy,
		LandingTemplateID: t.Landing,
		AssignedSellerID:  cfg.AssignedSellerID(),
		CreatedAt:         cfg.CreatedAt(),
		UpdatedAt:         cfg.UpdatedAt(),
	}, nil
}

// SavedConfigFromRow rebuilds the aggregate. links are the rows of
// saved_configuration_artifacts for the configuration.
func SavedConfigFromRow(row SavedConfigRow, links []artifact.Ref) (*savedconfig.SavedConfiguration, error) {
	var snap SnapshotRecord
	if err := json.Unmarshal(row.Snapshot, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode configuration snapshot: %w", err)
	}
	dims, err := DimensionsFromRecord(snap.Dimensions)
	if err != nil {
		return nil, err
	}

	var urls []URLRecord
	if len(row.URLs) > 0 {
		if err := json.Unmarshal(row.URLs, &urls); err != nil {
			return nil, fmt.Errorf("failed to decode configuration urls: %w", err)
		}
	}
	snaps := make([]savedconfig.URLSnapshot, 0, len(urls))
	for _, u := range urls {
		snaps = append(snaps, savedconfig.URLSnapshot(u))
	}

	return savedconfig.Reconstruct(
		row.ID,
		row.Name,
		row.Description,
		dims,
		snaps,
		savedconfig.TemplateIDs{
			Welcome: row.WelcomeTemplateID,
			Rebuy:   row.RebuyTemplateID,
			Landing: row.LandingTemplateID,
		},
		links,
		savedconfig.PriceSnapshot{
			Guests: snap.Price.Guests,
			Days:   snap.Price.Days,
			Breakdown: pricing.Breakdown{
				Base:           snap.Price.Base,
				WithCommission: snap.Price.WithCommission,
				Tax:            snap.Price.Tax,
				Final:          snap.Price.Final,
			},
		},
		row.AssignedSellerID,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}
