package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/enviro_health_system/internal/models"
)

const (
	alertQueueKey = "health_alert_events"
)

// Виды событий тревоги
const (
	KindCriticalAssessment = "critical_assessment"
	KindTimerExpired       = "timer_expired"
)

// Event - структура для данных события тревоги
type Event struct {
	UserID             string                    `json:"user_id"`
	Kind               string                    `json:"kind"`
	Message            string                    `json:"message"`
	VulnerabilityLevel models.VulnerabilityLevel `json:"vulnerability_level,omitempty"`
	Score              int                       `json:"score,omitempty"`
	Timestamp          time.Time                 `json:"timestamp"`
}

// Publisher - интерфейс для публикации событий тревоги
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие тревоги в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
