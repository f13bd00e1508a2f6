//go:build integration || e2e

package dbtest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"pass-config-engine/internal/infra/db"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

var (
	postgresOnce      sync.Once
	postgresContainer *postgres.PostgresContainer
	postgresErr       error

	redisOnce      sync.Once
	redisContainer *tcredis.RedisContainer
	redisErr       error
)

// StartPostgres returns a pool on a fresh, migrated database inside a shared
// container. The database is dropped when the test ends.
func StartPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	postgresOnce.Do(func() {
		postgresContainer, postgresErr = postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("postgres"),
			postgres.WithUsername(testUser),
			postgres.WithPassword(testPassword),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(2*time.Minute),
			),
		)
	})
	require.NoError(t, postgresErr, "failed to start postgres container")

	adminDSN, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err)
	defer admin.Close()

	dbName := fmt.Sprintf("it_%d", time.Now().UnixNano())
	_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	host, port := containerEndpoint(t, postgresContainer, "5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", testUser, testPassword, host, port.Port(), dbName)
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(pool), "failed to apply migrations")

	t.Cleanup(func() {
		pool.Close()
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		cleanup, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			return
		}
		defer cleanup.Close()
		_, _ = cleanup.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)")
	})
	return pool
}

// StartRedis returns a client on a shared container, flushed before use.
func StartRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	redisOnce.Do(func() {
		redisContainer, redisErr = tcredis.Run(ctx,
			"redis:7-alpine",
			testcontainers.WithWaitStrategy(
				wait.ForLog("* Ready to accept connections").
					WithStartupTimeout(time.Minute),
			),
		)
	})
	require.NoError(t, redisErr, "failed to start redis container")

	host, port := containerEndpoint(t, redisContainer, "6379/tcp")
	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	require.NoError(t, client.FlushDB(ctx).Err())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func containerEndpoint(t *testing.T, c testcontainers.Container, port nat.Port) (string, nat.Port) {
	t.Helper()
	ctx := context.Background()
	mapped, err := c.MappedPort(ctx, port)
	require.NoError(t, err)
	host, err := c.Host(ctx)
	require.NoError(t, err)
	return host, mapped
}
