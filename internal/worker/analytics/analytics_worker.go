package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/venue-discovery/internal/domain"
	"github.com/venue-discovery/internal/domain/repository"
	"github.com/venue-discovery/internal/worker"
	"go.uber.org/zap"
)

const (
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second            // пауза при ошибке чтения/записи
)

// SearchAppearWorker переносит события "search-appear" из Redis Stream
// в Postgres. Дубликаты при повторной доставке гасятся на уровне вставки
// (ON CONFLICT по id события).
type SearchAppearWorker struct {
	*worker.BaseWorker
	streamRepo    repository.StreamRepository
	analyticsRepo repository.AnalyticsRepository
	consumerName  string
	maxBatchSize  int
}

// NewSearchAppearWorker создает новый SearchAppearWorker
func NewSearchAppearWorker(
	streamRepo repository.StreamRepository,
	analyticsRepo repository.AnalyticsRepository,
	consumerGroup string,
	maxBatchSize int,
	logger *zap.Logger,
) *SearchAppearWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if maxBatchSize <= 0 {
		maxBatchSize = 20
	}

	return &SearchAppearWorker{
		BaseWorker:    worker.NewBaseWorker("search-appear-analytics", consumerGroup, logger),
		streamRepo:    streamRepo,
		analyticsRepo: analyticsRepo,
		consumerName:  consumerName,
		maxBatchSize:  maxBatchSize,
	}
}

// Start запускает воркер
func (w *SearchAppearWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting SearchAppearWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", w.maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamSearchAppear, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(errorSleep)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает пачку сообщений.
// Возвращает количество прочитанных сообщений.
func (w *SearchAppearWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamSearchAppear,
		w.ConsumerGroup(),
		w.consumerName,
		w.maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	events := make([]domain.VenueSearchEvent, 0, len(messages))
	messageIDs := make([]string, 0, len(messages))
	brokenIDs := make([]string, 0)

	for _, msg := range messages {
		var event domain.VenueSearchEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			brokenIDs = append(brokenIDs, msg.ID)
			continue
		}

		events = append(events, event)
		messageIDs = append(messageIDs, msg.ID)
	}

	if len(brokenIDs) > 0 {
		if err := w.streamRepo.AckMessages(ctx, domain.StreamSearchAppear, w.ConsumerGroup(), brokenIDs); err != nil {
			logger.Error("Failed to ack broken messages", zap.Error(err))
		}
	}

	if len(events) == 0 {
		return len(messages), nil // все сообщения были битые
	}

	if err := w.analyticsRepo.SaveEvents(ctx, events); err != nil {
		// Без ACK: consumer group доставит сообщения повторно
		return 0, fmt.Errorf("failed to save events: %w", err)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamSearchAppear, w.ConsumerGroup(), messageIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
		// Не критично - вставка идемпотентна, сообщения будут переобработаны
	}

	logger.Info("Batch processed",
		zap.Int("saved", len(events)),
		zap.Int("broken", len(brokenIDs)))

	return len(messages), nil
}
