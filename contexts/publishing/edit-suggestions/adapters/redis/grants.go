package redisadapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// GrantStore keeps one-shot edit grants as redis keys, so every process in a
// multi-process deployment sees the same capability table. Grants are
// written without expiry; the one-shot property comes from the atomic
// GetDel on consume, not from a TTL.
type GrantStore struct {
	client *redis.Client
	logger *slog.Logger
}

func NewGrantStore(client *redis.Client, logger *slog.Logger) *GrantStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &GrantStore{
		client: client,
		logger: logger,
	}
}

func (g *GrantStore) key(itemID, userID string) string {
	return fmt.Sprintf("edit_grant:%s:%s", itemID, userID)
}

func (g *GrantStore) IssueGrant(ctx context.Context, itemID string, userID string) error {
	key := g.key(itemID, userID)
	if err := g.client.Set(ctx, key, "1", 0).Err(); err != nil {
		return err
	}
	g.logger.Debug("edit grant issued",
		"event", "edit_grant_issued",
		"module", "publishing/edit-suggestions",
		"layer", "adapter",
		"redis_key", key,
	)
	return nil
}

// ConsumeGrant atomically reads and deletes the key; two concurrent edits by
// the same grantee race on GetDel and only one wins.
func (g *GrantStore) ConsumeGrant(ctx context.Context, itemID string, userID string) (bool, error) {
	key := g.key(itemID, userID)
	_, err := g.client.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	g.logger.Debug("edit grant consumed",
		"event", "edit_grant_consumed",
		"module", "publishing/edit-suggestions",
		"layer", "adapter",
		"redis_key", key,
	)
	return true, nil
}
