package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/infra/converter"

	"github.com/redis/go-redis/v9"
)

const (
	draftKeyPrefix = "draft:"
	// pendingKey scores each session by the time it first went pending, so the
	// poller retries the oldest sessions first.
	pendingKey = "drafts:pending"
)

// DraftCache is the local draft cache backed by Redis.
type DraftCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewDraftCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *DraftCache {
	return &DraftCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "draft_cache"),
	}
}

func draftKey(sessionID string) string {
	return draftKeyPrefix + sessionID
}

func (c *DraftCache) Get(ctx context.Context, sessionID string) (*draft.Draft, bool, error) {
	data, err := c.client.Get(ctx, draftKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached draft: %w", err)
	}
	d, err := converter.DraftFromJSON(data)
	if err != nil {
		c.logger.Warn("dropping unreadable cached draft", "session_id", sessionID, "error", err)
		_ = c.client.Del(ctx, draftKey(sessionID)).Err()
		return nil, false, nil
	}
	return d, true, nil
}

func (c *DraftCache) Put(ctx context.Context, d *draft.Draft) error {
	data, err := converter.DraftToJSON(d)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := c.client.Set(ctx, draftKey(d.SessionID()), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache draft: %w", err)
	}
	return nil
}

func (c *DraftCache) Delete(ctx context.Context, sessionID string) error {
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, draftKey(sessionID))
	pipe.ZRem(ctx, pendingKey, sessionID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete cached draft: %w", err)
	}
	return nil
}

// MarkPending keeps the original score when the session is already pending.
func (c *DraftCache) MarkPending(ctx context.Context, sessionID string) error {
	member := redis.Z{Score: float64(time.Now().UnixMilli()), Member: sessionID}
	if err := c.client.ZAddNX(ctx, pendingKey, member).Err(); err != nil {
		return fmt.Errorf("failed to mark draft pending: %w", err)
	}
	return nil
}

func (c *DraftCache) ClearPending(ctx context.Context, sessionID string) error {
	if err := c.client.ZRem(ctx, pendingKey, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to clear pending draft: %w", err)
	}
	return nil
}

func (c *DraftCache) IsPending(ctx context.Context, sessionID string) (bool, error) {
	err := c.client.ZScore(ctx, pendingKey, sessionID).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check pending draft: %w", err)
	}
	return true, nil
}

func (c *DraftCache) ListPending(ctx context.Context, limit int64) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	ids, err := c.client.ZRange(ctx, pendingKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending drafts: %w", err)
	}
	return ids, nil
}
