package repository

import (
	"context"

	"github.com/venue-discovery/internal/domain"
)

// StreamRepository - публикация и чтение аналитических событий через Redis Streams
type StreamRepository interface {
	// PublishToStream публикует событие в стрим (JSON в поле "data")
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// CreateConsumerGroup создаёт consumer group для стрима
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch читает до maxCount непрочитанных сообщений (неблокирующий режим)
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error)

	// AckMessages подтверждает обработку сообщений
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error
}
