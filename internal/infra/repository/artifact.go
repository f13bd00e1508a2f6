package repository

import (
	"context"
	"log/slog"
	"time"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/infra"
	"pass-config-engine/internal/infra/converter"
	"pass-config-engine/internal/infra/db"
	"pass-config-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	artifactColumns = `id, session_id, kind, origin, content, created_at`

	insertArtifactSQL = `
INSERT INTO template_artifacts (id, session_id, kind, origin, content, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	listArtifactsBySessionSQL = `SELECT ` + artifactColumns + `
FROM template_artifacts WHERE session_id = $1 ORDER BY created_at, id`

	findArtifactsByIDsSQL = `SELECT ` + artifactColumns + `
FROM template_artifacts WHERE id = ANY($1)`

	detachArtifactsSQL = `
UPDATE template_artifacts SET session_id = NULL
WHERE session_id = $1 AND id = ANY($2)`

	deleteArtifactsBySessionSQL = `DELETE FROM template_artifacts WHERE session_id = $1`

	deleteOrphanArtifactsSQL = `
DELETE FROM template_artifacts a
WHERE a.id = ANY($1)
  AND a.session_id IS NULL
  AND NOT EXISTS (
    SELECT 1 FROM saved_configuration_artifacts l WHERE l.artifact_id = a.id
  )`
)

type ArtifactRepository struct {
	logger *slog.Logger
}

func NewArtifactRepository(logger *slog.Logger) *ArtifactRepository {
	return &ArtifactRepository{logger: logger}
}

func (r *ArtifactRepository) Create(ctx context.Context, tx db.DBTX, a *artifact.Artifact) error {
	_, err := tx.Exec(ctx, insertArtifactSQL,
		a.ID(), sessionParam(a.SessionID()), string(a.Kind()), string(a.Origin()), a.Content(), a.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to create template artifact", err)
	}
	return nil
}

func (r *ArtifactRepository) ListBySession(ctx context.Context, tx db.DBTX, sessionID string) ([]*artifact.Artifact, error) {
	rows, err := tx.Query(ctx, listArtifactsBySessionSQL, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list session artifacts", err)
	}
	return r.collect(rows)
}

func (r *ArtifactRepository) FindByIDs(ctx context.Context, tx db.DBTX, ids []uuid.UUID) ([]*artifact.Artifact, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := tx.Query(ctx, findArtifactsByIDsSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find artifacts", err)
	}
	return r.collect(rows)
}

func (r *ArtifactRepository) DetachFromSession(ctx context.Context, tx db.DBTX, sessionID string, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := tx.Exec(ctx, detachArtifactsSQL, sessionID, ids); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to detach artifacts", err)
	}
	return nil
}

func (r *ArtifactRepository) DeleteBySession(ctx context.Context, tx db.DBTX, sessionID string) (int64, error) {
	tag, err := tx.Exec(ctx, deleteArtifactsBySessionSQL, sessionID)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete session artifacts", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ArtifactRepository) DeleteOrphans(ctx context.Context, tx db.DBTX, candidates []uuid.UUID) (int64, error) {
	if len(candidates) == 0 {
		return 0, nil
	}
	tag, err := tx.Exec(ctx, deleteOrphanArtifactsSQL, candidates)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete orphan artifacts", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ArtifactRepository) collect(rows pgx.Rows) ([]*artifact.Artifact, error) {
	out, err := pgx.CollectRows(rows, scanArtifact)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read artifacts", err)
	}
	return out, nil
}

func scanArtifact(row pgx.CollectableRow) (*artifact.Artifact, error) {
	var (
		id        uuid.UUID
		session   pgtype.Text
		kind      string
		origin    string
		content   string
		createdAt time.Time
	)
	if err := row.Scan(&id, &session, &kind, &origin, &content, &createdAt); err != nil {
		return nil, err
	}
	k, err := artifact.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	o, err := converter.ParseOrigin(origin)
	if err != nil {
		return nil, err
	}
	var sessionID string
	if s := pgconv.StringPtrFromPgtype(session); s != nil {
		sessionID = *s
	}
	return artifact.ReconstructArtifact(id, sessionID, k, o, content, createdAt), nil
}

// sessionParam stores detached artifacts with a NULL session.
func sessionParam(sessionID string) pgtype.Text {
	if sessionID == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: sessionID, Valid: true}
}
