package readstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/domain/savedconfig"
	"pass-config-engine/internal/infra"
	"pass-config-engine/internal/infra/db"
	"pass-config-engine/internal/infra/repository"
	"pass-config-engine/internal/pkg/pgconv"
	"pass-config-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Nullable parameters follow the "$n IS NULL OR" shape so one statement
// serves every filter combination.
const libraryWhere = `
WHERE ($1::text IS NULL OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
  AND ($2::text IS NULL OR pricing_mode = $2)
  AND ($3::text IS NULL OR delivery_method = $3)
  AND ($4::boolean IS NULL OR (assigned_seller_id IS NOT NULL) = $4)`

const (
	listLibrarySQL = `
SELECT id, name, description, pricing_mode, delivery_method, final_price::text,
       assigned_seller_id, created_at, updated_at
FROM saved_configurations` + libraryWhere

	countLibrarySQL = `SELECT count(*) FROM saved_configurations` + libraryWhere
)

var sortColumns = map[queries.SortField]string{
	queries.SortByName:      "name",
	queries.SortByCreatedAt: "created_at",
	queries.SortByPrice:     "final_price",
}

type SavedConfigReadStore struct {
	db      db.DBTX
	configs *repository.SavedConfigRepository
	logger  *slog.Logger
}

func NewSavedConfigReadStore(conn db.DBTX, configs *repository.SavedConfigRepository, logger *slog.Logger) *SavedConfigReadStore {
	return &SavedConfigReadStore{db: conn, configs: configs, logger: logger}
}

func (r *SavedConfigReadStore) FindByID(ctx context.Context, id uuid.UUID) (*savedconfig.SavedConfiguration, error) {
	return r.configs.FindByID(ctx, r.db, id)
}

func (r *SavedConfigReadStore) List(ctx context.Context, filter queries.LibraryFilter, sort queries.LibrarySort, limit, offset int32) ([]*queries.ConfigurationListItem, int64, error) {
	args := filterArgs(filter)

	var total int64
	if err := r.db.QueryRow(ctx, countLibrarySQL, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to count configurations", err)
	}
	if total == 0 {
		return []*queries.ConfigurationListItem{}, 0, nil
	}

	query, err := listQuery(sort)
	if err != nil {
		return nil, 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid library sort", err)
	}
	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list configurations", err)
	}
	items, err := pgx.CollectRows(rows, scanListItem)
	if err != nil {
		return nil, 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read configurations", err)
	}
	return items, total, nil
}

// listQuery appends a whitelisted ORDER BY. id breaks ties so pages are stable.
func listQuery(sort queries.LibrarySort) (string, error) {
	col, ok := sortColumns[sort.Field]
	if !ok {
		return "", fmt.Errorf("unknown sort field %q", sort.Field)
	}
	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}
	var b strings.Builder
	b.WriteString(listLibrarySQL)
	fmt.Fprintf(&b, "\nORDER BY %s %s, id %s\nLIMIT $5 OFFSET $6", col, dir, dir)
	return b.String(), nil
}

func filterArgs(f queries.LibraryFilter) []any {
	search := pgtype.Text{}
	if f.SearchText != "" {
		search = pgtype.Text{String: escapeLike(f.SearchText), Valid: true}
	}
	mode := pgtype.Text{}
	if f.PricingMode != nil {
		mode = pgtype.Text{String: string(*f.PricingMode), Valid: true}
	}
	method := pgtype.Text{}
	if f.DeliveryMethod != nil {
		method = pgtype.Text{String: string(*f.DeliveryMethod), Valid: true}
	}
	assigned := pgtype.Bool{}
	if f.Assigned != nil {
		assigned = pgtype.Bool{Bool: *f.Assigned, Valid: true}
	}
	return []any{search, mode, method, assigned}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanListItem(row pgx.CollectableRow) (*queries.ConfigurationListItem, error) {
	var (
		item                 queries.ConfigurationListItem
		mode, method         string
		finalPrice           pgtype.Text
		assigned             pgtype.UUID
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &mode, &method, &finalPrice,
		&assigned, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromText(finalPrice)
	if err != nil {
		return nil, err
	}
	item.PricingMode = pricing.Mode(mode)
	item.DeliveryMethod = draft.DeliveryMethod(method)
	item.FinalPrice = price
	item.AssignedSellerID = pgconv.UUIDPtrFromPgtype(assigned)
	item.CreatedAt = createdAt
	item.UpdatedAt = updatedAt
	return &item, nil
}
