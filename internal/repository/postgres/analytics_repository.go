package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/venue-discovery/internal/domain"
	"github.com/venue-discovery/internal/domain/repository"
	"github.com/venue-discovery/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type analyticsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAnalyticsRepository(db *DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// SaveEvents сохраняет пачку событий одной multi-row вставкой.
// ON CONFLICT DO NOTHING: событие может прийти повторно при ретрае consumer group.
func (r *analyticsRepository) SaveEvents(ctx context.Context, events []domain.VenueSearchEvent) error {
	if len(events) == 0 {
		return nil
	}

	values := make([]string, 0, len(events))
	args := make([]interface{}, 0, len(events)*5)
	argIdx := 1

	for _, e := range events {
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
			argIdx, argIdx+1, argIdx+2, argIdx+3, argIdx+4))
		args = append(args, e.ID, e.VenueID, e.Activity, e.Kind, e.OccurredAt)
		argIdx += 5
	}

	query := `
		INSERT INTO venue_search_events (id, venue_id, activity, kind, occurred_at)
		VALUES ` + strings.Join(values, ", ") + `
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save search events",
			zap.Int("count", len(events)),
			zap.Error(err))
		return errors.ErrStoreUnavailable
	}

	return nil
}
