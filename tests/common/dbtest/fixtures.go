//go:build integration || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is the minimal surface fixtures need.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func CreateSeller(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO sellers (id, name, email) VALUES ($1, $2, $3)", id, name, email)
	require.NoError(t, err)
	return id
}
