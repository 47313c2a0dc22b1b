package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/event_safety_system/internal/room"
)

// StatsCache - короткоживущий кеш сводок событий в Redis.
// Снимает нагрузку частого опроса дашбордов с горутины комнаты.
type StatsCache struct {
	redisClient *redis.Client
}

func NewStatsCache(redisClient *redis.Client) *StatsCache {
	return &StatsCache{redisClient: redisClient}
}

// SetStats сохраняет сводку события с заданным TTL
func (c *StatsCache) SetStats(ctx context.Context, eventID string, stats room.Stats, ttl time.Duration) error {
	key := fmt.Sprintf("event_stats:%s", eventID)
	val, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set stats in cache: %w", err)
	}
	return nil
}

// GetStats пытается получить сводку события из кеша.
// Промах кеша - не ошибка: возвращается ok=false.
func (c *StatsCache) GetStats(ctx context.Context, eventID string) (room.Stats, bool, error) {
	key := fmt.Sprintf("event_stats:%s", eventID)
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return room.Stats{}, false, nil
		}
		return room.Stats{}, false, fmt.Errorf("failed to get stats from cache: %w", err)
	}

	var stats room.Stats
	if err := json.Unmarshal(val, &stats); err != nil {
		return room.Stats{}, false, fmt.Errorf("failed to unmarshal stats from cache: %w", err)
	}
	return stats, true, nil
}
