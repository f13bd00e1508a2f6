package repository

import (
	"context"
	"log/slog"

	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/infra"
	"pass-config-engine/internal/infra/converter"
	"pass-config-engine/internal/infra/db"
	"pass-config-engine/internal/pkg/pgconv"
)

const (
	deleteDraftSQL = `DELETE FROM drafts WHERE session_id = $1`

	selectDraftSQL = `SELECT data FROM drafts WHERE session_id = $1`

	upsertDraftSQL = `
INSERT INTO drafts (session_id, data, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (session_id) DO UPDATE
SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
WHERE drafts.updated_at <= EXCLUDED.updated_at`
)

type DraftRepository struct {
	logger *slog.Logger
}

func NewDraftRepository(logger *slog.Logger) *DraftRepository {
	return &DraftRepository{logger: logger}
}

func (r *DraftRepository) Delete(ctx context.Context, tx db.DBTX, sessionID string) error {
	if _, err := tx.Exec(ctx, deleteDraftSQL, sessionID); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete draft", err)
	}
	return nil
}

// DraftStore is the remote draft store. It runs outside any unit of work
// because drafts are written in the background.
type DraftStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewDraftStore(conn db.DBTX, logger *slog.Logger) *DraftStore {
	return &DraftStore{db: conn, logger: logger}
}

func (s *DraftStore) Fetch(ctx context.Context, sessionID string) (*draft.Draft, bool, error) {
	var data []byte
	err := s.db.QueryRow(ctx, selectDraftSQL, sessionID).Scan(&data)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to fetch draft", err)
	}
	d, err := converter.DraftFromJSON(data)
	if err != nil {
		return nil, false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "stored draft is unreadable", err)
	}
	return d, true, nil
}

// Store upserts the draft. An older snapshot never overwrites a newer one.
func (s *DraftStore) Store(ctx context.Context, d *draft.Draft) error {
	data, err := converter.DraftToJSON(d)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to encode draft", err)
	}
	if _, err := s.db.Exec(ctx, upsertDraftSQL, d.SessionID(), data, d.UpdatedAt()); err != nil {
		return infra.WrapRepoErr(s.logger, infra.Classify(err), "failed to store draft", err)
	}
	return nil
}
