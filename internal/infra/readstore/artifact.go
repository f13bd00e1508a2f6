package readstore

import (
	"context"
	"log/slog"

	"pass-config-engine/internal/domain/artifact"
	"pass-config-engine/internal/infra"
	"pass-config-engine/internal/infra/converter"
	"pass-config-engine/internal/infra/db"
	"pass-config-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	listArtifactRefsSQL = `
SELECT id, kind, origin FROM template_artifacts
WHERE session_id = $1 ORDER BY created_at, id`

	defaultTemplateSQL = `SELECT content FROM default_templates WHERE kind = $1`
)

// ArtifactLookup answers what the external editor has registered for a session.
type ArtifactLookup struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewArtifactLookup(conn db.DBTX, logger *slog.Logger) *ArtifactLookup {
	return &ArtifactLookup{db: conn, logger: logger}
}

func (r *ArtifactLookup) RefsBySession(ctx context.Context, sessionID string) ([]artifact.Ref, error) {
	rows, err := r.db.Query(ctx, listArtifactRefsSQL, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list artifact refs", err)
	}
	refs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (artifact.Ref, error) {
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
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read artifact refs", err)
	}
	return refs, nil
}

// DefaultTemplateSource reads the platform default template content.
type DefaultTemplateSource struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewDefaultTemplateSource(conn db.DBTX, logger *slog.Logger) *DefaultTemplateSource {
	return &DefaultTemplateSource{db: conn, logger: logger}
}

func (s *DefaultTemplateSource) Content(ctx context.Context, kind artifact.Kind) (string, error) {
	var content string
	if err := s.db.QueryRow(ctx, defaultTemplateSQL, string(kind)).Scan(&content); err != nil {
		kindOf := infra.KindDBFailure
		if pgconv.IsNoRows(err) {
			kindOf = infra.KindNotFound
		}
		return "", infra.WrapRepoErr(s.logger, kindOf, "default template unavailable", err)
	}
	return content, nil
}
