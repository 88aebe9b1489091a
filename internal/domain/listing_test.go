package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVenue_Visible(t *testing.T) {
	tests := []struct {
		name     string
		venue    Venue
		expected bool
	}{
		{
			name:     "published and active",
			venue:    Venue{Published: true, Active: true},
			expected: true,
		},
		{
			name:     "free listing substitutes published",
			venue:    Venue{FreeListing: true, Active: true},
			expected: true,
		},
		{
			name:     "published but inactive",
			venue:    Venue{Published: true, Active: false},
			expected: false,
		},
		{
			name:     "active but neither published nor free",
			venue:    Venue{Active: true},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.venue.Visible())
		})
	}
}

func TestEvent_Weekday(t *testing.T) {
	e := Event{Date: time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)} // Sunday
	assert.Equal(t, 0, e.Weekday())

	e.Date = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC) // Saturday
	assert.Equal(t, 6, e.Weekday())
}

func TestDrinkSpecial_MatchesDay(t *testing.T) {
	tests := []struct {
		name     string
		days     []int64
		day      int
		expected bool
	}{
		{"day in set", []int64{4, 5}, 4, true},
		{"day not in set", []int64{4, 5}, 2, false},
		{"empty set means every day", nil, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DrinkSpecial{DaysOfWeek: tt.days}
			assert.Equal(t, tt.expected, d.MatchesDay(tt.day))
		})
	}
}

func TestFoodSpecial_MatchesDay(t *testing.T) {
	tests := []struct {
		name      string
		days      []int64
		isSpecial bool
		day       int
		expected  bool
	}{
		{"special with day in set", []int64{2}, true, 2, true},
		{"special with day not in set", []int64{2}, true, 3, false},
		{"special with empty set means every day", nil, true, 3, true},
		{"not special never matches", []int64{2}, false, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FoodSpecial{SpecialDays: tt.days, IsSpecial: tt.isSpecial}
			assert.Equal(t, tt.expected, f.MatchesDay(tt.day))
		})
	}
}
