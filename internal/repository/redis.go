package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

const historyKeyPrefix = "historial:"

// RedisHistoryRepository stores each session's history as a redis list with a
// sliding TTL, newest entry at the head.
type RedisHistoryRepository struct {
	client   *redis.Client
	logger   *log.Logger
	liveTime time.Duration
}

func NewRedisHistoryRepository(client *redis.Client, logger *log.Logger, liveTime time.Duration) *RedisHistoryRepository {
	return &RedisHistoryRepository{client: client, logger: logger, liveTime: liveTime}
}

func (r *RedisHistoryRepository) Append(ctx context.Context, sessionID string, entry models.HistoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	key := historyKeyPrefix + sessionID
	if err := r.client.LPush(ctx, key, data).Err(); err != nil {
		return err
	}
	if err := r.client.Expire(ctx, key, r.liveTime).Err(); err != nil {
		r.logger.Printf("failed to refresh TTL for %s: %v", key, err)
	}
	return nil
}

func (r *RedisHistoryRepository) List(ctx context.Context, sessionID string) ([]models.HistoryEntry, error) {
	raw, err := r.client.LRange(ctx, historyKeyPrefix+sessionID, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]models.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *RedisHistoryRepository) Clear(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, historyKeyPrefix+sessionID).Err()
}
