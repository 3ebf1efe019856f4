package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/pigeon_guard/internal/models"
)

const (
	webhookQueueKey = "intervention_webhook_events"
)

// InterventionEvent - полезная нагрузка вебхука о сработавшем вмешательстве
type InterventionEvent struct {
	EventID              uuid.UUID        `json:"event_id"`
	InterventionID       int64            `json:"intervention_id"`
	DangerZoneID         string           `json:"danger_zone_id"`
	Latitude             float64          `json:"latitude"`
	Longitude            float64          `json:"longitude"`
	PredictedProbability float64          `json:"predicted_probability"`
	RiskLevel            models.RiskLevel `json:"risk_level"`
	NotificationMessage  string           `json:"notification_message,omitempty"`
	Timestamp            time.Time        `json:"timestamp"`
}

// Publisher - интерфейс для публикации событий вмешательств
type Publisher interface {
	Publish(ctx context.Context, event InterventionEvent) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вмешательства в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event InterventionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal intervention event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish intervention event to Redis: %w", err)
	}
	return nil
}
