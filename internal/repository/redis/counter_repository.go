package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/venue-discovery/internal/domain/repository"
	"go.uber.org/zap"
)

type counterRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCounterRepository создает репозиторий счётчиков показов
func NewCounterRepository(client *redis.Client, logger *zap.Logger) repository.CounterRepository {
	return &counterRepository{
		client: client,
		logger: logger,
	}
}

func visibilityKey(venueID int64) string {
	return fmt.Sprintf("visibility:venue:%d", venueID)
}

// IncrementVisibility инкрементирует счётчики всех заведений одним pipeline
// (один round-trip на весь список выдачи)
func (r *counterRepository) IncrementVisibility(ctx context.Context, venueIDs []int64) error {
	if len(venueIDs) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for _, id := range venueIDs {
		pipe.Incr(ctx, visibilityKey(id))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to increment visibility counters",
			zap.Int("venue_count", len(venueIDs)),
			zap.Error(err))
		return fmt.Errorf("visibility increment error: %w", err)
	}

	return nil
}

func (r *counterRepository) GetVisibility(ctx context.Context, venueID int64) (int64, error) {
	val, err := r.client.Get(ctx, visibilityKey(venueID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		r.logger.Error("Failed to get visibility counter",
			zap.Int64("venue_id", venueID),
			zap.Error(err))
		return 0, fmt.Errorf("visibility get error: %w", err)
	}

	return val, nil
}
