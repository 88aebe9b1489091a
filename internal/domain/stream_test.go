package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewSearchAppearEvent(t *testing.T) {
	now := time.Date(2026, 8, 25, 17, 0, 0, 0, time.FixedZone("EST", -5*3600))

	event := NewSearchAppearEvent(42, "trivia", now)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, int64(42), event.VenueID)
	assert.Equal(t, "trivia", event.Activity)
	assert.Equal(t, EventKindSearchAppear, event.Kind)
	// Timestamps are normalized to UTC before publishing
	assert.Equal(t, time.UTC, event.OccurredAt.Location())
	assert.True(t, event.OccurredAt.Equal(now))
}

func TestNewSearchAppearEvent_UniqueIDs(t *testing.T) {
	now := time.Now()
	a := NewSearchAppearEvent(1, "trivia", now)
	b := NewSearchAppearEvent(1, "trivia", now)

	assert.NotEqual(t, a.ID, b.ID)
}
