package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	escalationQueueKey = "escalation_events"
)

// Типы эскалационных событий
const (
	KindSOSTriggered     = "sos_triggered"
	KindIncidentReported = "incident_reported"
	KindSafetyAlert      = "safety_alert"
)

// Event - эскалационное событие, доставляемое внешним службам реагирования.
// Payload несет исходный объект (сигнал, инцидент или оповещение) как есть.
type Event struct {
	Kind      string    `json:"kind"`
	EventID   string    `json:"event_id"`
	Severity  string    `json:"severity,omitempty"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher - интерфейс для публикации эскалационных событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher поверх очереди Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal escalation event: %w", err)
	}

	// LPUSH здесь + BRPop на стороне воркера дают FIFO-очередь
	if err := p.redisClient.LPush(ctx, escalationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish escalation event to Redis: %w", err)
	}
	return nil
}
