package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names (должны совпадать с потребителями аналитики)
const (
	StreamSearchAppear = "stream:venue:search-appear"
)

// EventKindSearchAppear - фиксированный тип аналитического события:
// заведение попало в финальную выдачу поиска.
const EventKindSearchAppear = "search-appear"

// VenueSearchEvent - аналитическое событие по одному заведению из выдачи
type VenueSearchEvent struct {
	ID         uuid.UUID `json:"id" db:"id"`
	VenueID    int64     `json:"venue_id" db:"venue_id"`
	Activity   string    `json:"activity" db:"activity"`
	Kind       string    `json:"kind" db:"kind"`
	OccurredAt time.Time `json:"occurred_at" db:"occurred_at"`
}

// NewSearchAppearEvent создает событие "search-appear" для заведения
func NewSearchAppearEvent(venueID int64, activity string, now time.Time) VenueSearchEvent {
	return VenueSearchEvent{
		ID:         uuid.New(),
		VenueID:    venueID,
		Activity:   activity,
		Kind:       EventKindSearchAppear,
		OccurredAt: now.UTC(),
	}
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
