package repository

import (
	"context"

	"github.com/venue-discovery/internal/domain"
)

// AnalyticsRepository - долговременное хранилище аналитических событий
type AnalyticsRepository interface {
	// SaveEvents сохраняет пачку событий одной вставкой
	SaveEvents(ctx context.Context, events []domain.VenueSearchEvent) error
}
