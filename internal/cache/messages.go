package cache

import (
	"context"
	"encoding/json"
	"time"

	"skillswap/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	activeMessagesKey = "admin_messages:active"
	activeMessagesTTL = 60 * time.Second
)

// GetActiveMessages returns the cached active admin messages, or nil when
// the cache is cold or unavailable.
func GetActiveMessages(ctx context.Context, rdb *redis.Client) []models.AdminMessage {
	if rdb == nil {
		return nil
	}

	payload, err := rdb.Get(ctx, activeMessagesKey).Bytes()
	if err != nil {
		return nil
	}

	var messages []models.AdminMessage
	if err := json.Unmarshal(payload, &messages); err != nil {
		return nil
	}
	return messages
}

// SetActiveMessages stores the active admin messages with a short TTL.
// Cache failures are ignored; the database remains the source of truth.
func SetActiveMessages(ctx context.Context, rdb *redis.Client, messages []models.AdminMessage) {
	if rdb == nil {
		return
	}

	payload, err := json.Marshal(messages)
	if err != nil {
		return
	}
	rdb.Set(ctx, activeMessagesKey, payload, activeMessagesTTL)
}

// InvalidateActiveMessages drops the cached active message list. Called after
// any admin message mutation.
func InvalidateActiveMessages(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, activeMessagesKey)
}
