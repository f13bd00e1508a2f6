package readstore

import (
	"context"
	"log/slog"

	"pass-config-engine/internal/infra"
	"pass-config-engine/internal/infra/db"
	"pass-config-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const listUnassignedSellersSQL = `
SELECT s.id, s.name, s.email, s.created_at
FROM sellers s
LEFT JOIN saved_configurations c ON c.assigned_seller_id = s.id
WHERE c.id IS NULL
ORDER BY s.name, s.id`

type SellerReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSellerReadStore(conn db.DBTX, logger *slog.Logger) *SellerReadStore {
	return &SellerReadStore{db: conn, logger: logger}
}

func (r *SellerReadStore) ListUnassigned(ctx context.Context) ([]*queries.SellerView, error) {
	rows, err := r.db.Query(ctx, listUnassignedSellersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list unassigned sellers", err)
	}
	sellers, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.SellerView])
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read sellers", err)
	}
	return sellers, nil
}
