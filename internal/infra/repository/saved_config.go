package repository

import (
	"context"
	"log/slog"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/domain/savedconfig"
	"pass-config-engine/internal/infra"
	"pass-config-engine/internal/infra/converter"
	"pass-config-engine/internal/infra/db"
	"pass-config-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	SavedConfigColumns = `id, name, description, pricing_mode, delivery_method, final_price::text,
snapshot, urls, url_map, welcome_template_id, rebuy_template_id, landing_template_id,
assigned_seller_id, created_at, updated_at`

	insertSavedConfigSQL = `
INSERT INTO saved_configurations (
    id, name, description, pricing_mode, delivery_method, final_price,
    snapshot, urls, url_map, welcome_template_id, rebuy_template_id, landing_template_id,
    assigned_seller_id, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	insertSavedConfigLinksSQL = `
INSERT INTO saved_configuration_artifacts (configuration_id, artifact_id, kind, origin)
SELECT $1, l.artifact_id, l.kind, l.origin
FROM unnest($2::uuid[], $3::text[], $4::text[]) AS l(artifact_id, kind, origin)`

	findSavedConfigSQL = `SELECT ` + SavedConfigColumns + ` FROM saved_configurations WHERE id = $1`

	findSavedConfigForUpdateSQL = findSavedConfigSQL + ` FOR UPDATE`

	listSavedConfigLinksSQL = `
SELECT artifact_id, kind, origin FROM saved_configuration_artifacts
WHERE configuration_id = $1 ORDER BY kind, artifact_id`

	findSavedConfigBySellerSQL = `SELECT id FROM saved_configurations WHERE assigned_seller_id = $1`

	updateSavedConfigMetadataSQL = `
UPDATE saved_configurations SET name = $2, description = $3, updated_at = $4 WHERE id = $1`

	assignSavedConfigSQL = `
UPDATE saved_configurations SET assigned_seller_id = $2, updated_at = now() WHERE id = $1`

	deleteSavedConfigSQL = `DELETE FROM saved_configurations WHERE id = $1`
)

type SavedConfigRepository struct {
	logger *slog.Logger
}

func NewSavedConfigRepository(logger *slog.Logger) *SavedConfigRepository {
	return &SavedConfigRepository{logger: logger}
}

func (r *SavedConfigRepository) Create(ctx context.Context, tx db.DBTX, cfg *savedconfig.SavedConfiguration) error {
	row, err := converter.SavedConfigToRow(cfg)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode configuration", err)
	}
	_, err = tx.Exec(ctx, insertSavedConfigSQL,
		row.ID, row.Name, row.Description, row.PricingMode, row.DeliveryMethod, row.FinalPrice,
		row.Snapshot, row.URLs, row.URLMap,
		pgconv.UUIDPtrToPgtype(row.WelcomeTemplateID),
		pgconv.UUIDPtrToPgtype(row.RebuyTemplateID),
		pgconv.UUIDPtrToPgtype(row.LandingTemplateID),
		pgconv.UUIDPtrToPgtype(row.AssignedSellerID),
		row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to create configuration", err)
	}

	links := cfg.Artifacts()
	if len(links) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(links))
	kinds := make([]string, 0, len(links))
	origins := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ID)
		kinds = append(kinds, string(l.Kind))
		origins = append(origins, string(l.Origin))
	}
	if _, err := tx.Exec(ctx, insertSavedConfigLinksSQL, row.ID, ids, kinds, origins); err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to link configuration artifacts", err)
	}
	return nil
}

func (r *SavedConfigRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*savedconfig.SavedConfiguration, error) {
	return r.find(ctx, tx, findSavedConfigSQL, id)
}

func (r *SavedConfigRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*savedconfig.SavedConfiguration, error) {
	return r.find(ctx, tx, findSavedConfigForUpdateSQL, id)
}

func (r *SavedConfigRepository) find(ctx context.Context, tx db.DBTX, query string, id uuid.UUID) (*savedconfig.SavedConfiguration, error) {
	rows, err := tx.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find configuration", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, ScanSavedConfigRow)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), "configuration not found", err)
	}

	linkRows, err := tx.Query(ctx, listSavedConfigLinksSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to load configuration artifacts", err)
	}
	links, err := pgx.CollectRows(linkRows, scanLink)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read configuration artifacts", err)
	}

	cfg, err := converter.SavedConfigFromRow(row, links)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored configuration is unreadable", err)
	}
	return cfg, nil
}

func (r *SavedConfigRepository) FindBySeller(ctx context.Context, tx db.DBTX, sellerID uuid.UUID) (*uuid.UUID, error) {
	var id uuid.UUID
	if err := tx.QueryRow(ctx, findSavedConfigBySellerSQL, sellerID).Scan(&id); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find configuration by seller", err)
	}
	return &id, nil
}

func (r *SavedConfigRepository) UpdateMetadata(ctx context.Context, tx db.DBTX, cfg *savedconfig.SavedConfiguration) error {
	tag, err := tx.Exec(ctx, updateSavedConfigMetadataSQL, cfg.ID(), cfg.Name(), cfg.Description(), cfg.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update configuration", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "configuration not found", nil)
	}
	return nil
}

// Assign relies on the partial unique index over assigned_seller_id, so a
// concurrent assignment of the same seller surfaces as a conflict.
func (r *SavedConfigRepository) Assign(ctx context.Context, tx db.DBTX, id, sellerID uuid.UUID) error {
	tag, err := tx.Exec(ctx, assignSavedConfigSQL, id, sellerID)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to assign configuration", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "configuration not found", nil)
	}
	return nil
}

func (r *SavedConfigRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteSavedConfigSQL, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete configuration", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "configuration not found", nil)
	}
	return nil
}

// ScanSavedConfigRow reads the SavedConfigColumns projection.
func ScanSavedConfigRow(row pgx.CollectableRow) (converter.SavedConfigRow, error) {
	var (
		out                     converter.SavedConfigRow
		finalPrice              pgtype.Text
		welcome, rebuy, landing pgtype.UUID
		assigned                pgtype.UUID
		createdAt, updatedAt    time.Time
	)
	err := row.Scan(
		&out.ID, &out.Name, &out.Description, &out.PricingMode, &out.DeliveryMethod, &finalPrice,
		&out.Snapshot, &out.URLs, &out.URLMap, &welcome, &rebuy, &landing,
		&assigned, &createdAt, &updatedAt,
	)
	if err != nil {
		return out, err
	}
	if out.FinalPrice, err = pgconv.DecimalFromText(finalPrice); err != nil {
		return out, err
	}
	out.WelcomeTemplateID = pgconv.UUIDPtrFromPgtype(welcome)
	out.RebuyTemplateID = pgconv.UUIDPtrFromPgtype(rebuy)
	out.LandingTemplateID = pgconv.UUIDPtrFromPgtype(landing)
	out.AssignedSellerID = pgconv.UUIDPtrFromPgtype(assigned)
	out.CreatedAt = createdAt
	out.UpdatedAt = updatedAt
	return out, nil
}

func scanLink(row pgx.CollectableRow) (artifact.Ref, error) {
	var (
		id           uuid.UUID
		kind, origin string
	)
	if err := row.Scan(&id, &kind, &origin); err != nil {
		return artifact.Ref{}, err
	}
	k, err := artifact.ParseKind(kind)
	if err != nil {
		return artifact.Ref{}, err
	}
	o, err := converter.ParseOrigin(origin)
	if err != nil {
		return artifact.Ref{}, err
	}
	return artifact.Ref{ID: id, Kind: k, Origin: o}, nil
}
