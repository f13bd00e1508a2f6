package repository

import (
	"context"
	"log/slog"
	"time"

	"pass-config-engine/internal/domain/tempurl"
	"pass-config-engine/internal/infra"
	"pass-config-engine/internal/infra/db"
	"pass-config-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	tempURLColumns = `id, session_id, name, url, description, created_at, updated_at`

	insertTempURLSQL = `
INSERT INTO temporary_urls (id, session_id, name, url, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	updateTempURLSQL = `
UPDATE temporary_urls SET name = $3, url = $4, description = $5, updated_at = $6
WHERE id = $1 AND session_id = $2`

	findTempURLSQL = `SELECT ` + tempURLColumns + `
FROM temporary_urls WHERE id = $1 AND session_id = $2`

	listTempURLsSQL = `SELECT ` + tempURLColumns + `
FROM temporary_urls WHERE session_id = $1 ORDER BY created_at, id`

	deleteTempURLSQL = `DELETE FROM temporary_urls WHERE id = $1 AND session_id = $2`

	deleteTempURLsBySessionSQL = `DELETE FROM temporary_urls WHERE session_id = $1`
)

type TempURLRepository struct {
	logger *slog.Logger
}

func NewTempURLRepository(logger *slog.Logger) *TempURLRepository {
	return &TempURLRepository{logger: logger}
}

func (r *TempURLRepository) Create(ctx context.Context, tx db.DBTX, u *tempurl.URL) error {
	_, err := tx.Exec(ctx, insertTempURLSQL,
		u.ID(), u.SessionID(), u.Name(),
		pgconv.StringPtrToPgtype(u.Address()), pgconv.StringPtrToPgtype(u.Description()),
		u.CreatedAt(), u.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to create temporary url", err)
	}
	return nil
}

func (r *TempURLRepository) Update(ctx context.Context, tx db.DBTX, u *tempurl.URL) error {
	tag, err := tx.Exec(ctx, updateTempURLSQL,
		u.ID(), u.SessionID(), u.Name(),
		pgconv.StringPtrToPgtype(u.Address()), pgconv.StringPtrToPgtype(u.Description()),
		u.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update temporary url", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "temporary url not found", nil)
	}
	return nil
}

func (r *TempURLRepository) FindByID(ctx context.Context, tx db.DBTX, sessionID string, id uuid.UUID) (*tempurl.URL, error) {
	rows, err := tx.Query(ctx, findTempURLSQL, id, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find temporary url", err)
	}
	u, err := pgx.CollectExactlyOneRow(rows, scanTempURL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), "temporary url not found", err)
	}
	return u, nil
}

func (r *TempURLRepository) ListBySession(ctx context.Context, tx db.DBTX, sessionID string) ([]*tempurl.URL, error) {
	rows, err := tx.Query(ctx, listTempURLsSQL, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list temporary urls", err)
	}
	urls, err := pgx.CollectRows(rows, scanTempURL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read temporary urls", err)
	}
	return urls, nil
}

func (r *TempURLRepository) Delete(ctx context.Context, tx db.DBTX, sessionID string, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteTempURLSQL, id, sessionID)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete temporary url", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "temporary url not found", nil)
	}
	return nil
}

func (r *TempURLRepository) DeleteBySession(ctx context.Context, tx db.DBTX, sessionID string) (int64, error) {
	tag, err := tx.Exec(ctx, deleteTempURLsBySessionSQL, sessionID)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete session urls", err)
	}
	return tag.RowsAffected(), nil
}

func scanTempURL(row pgx.CollectableRow) (*tempurl.URL, error) {
	var (
		id                   uuid.UUID
		sessionID, name      string
		address, description pgtype.Text
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &sessionID, &name, &address, &description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return tempurl.ReconstructURL(id, sessionID, name,
		pgconv.StringPtrFromPgtype(address), pgconv.StringPtrFromPgtype(description),
		createdAt, updatedAt), nil
}
