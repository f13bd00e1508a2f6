package repository

import (
	"context"
	"log/slog"

	"pass-config-engine/internal/infra"
	"pass-config-engine/internal/infra/db"

	"github.com/google/uuid"
)

const sellerExistsSQL = `SELECT EXISTS (SELECT 1 FROM sellers WHERE id = $1)`

type SellerRepository struct {
	logger *slog.Logger
}

func NewSellerRepository(logger *slog.Logger) *SellerRepository {
	return &SellerRepository{logger: logger}
}

func (r *SellerRepository) Exists(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, sellerExistsSQL, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to check seller", err)
	}
	return exists, nil
}
