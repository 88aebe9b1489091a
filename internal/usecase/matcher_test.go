package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/venue-discovery/internal/domain"
	"github.com/venue-discovery/internal/usecase"
)

func ptrString(s string) *string { return &s }

func baseVenue() domain.Venue {
	return domain.Venue{
		ID:        1,
		Name:      "The Rusty Anchor",
		Slug:      "the-rusty-anchor",
		Address:   "12 Harbor St",
		City:      "Portsmouth",
		State:     "NH",
		VenueType: "bar",
		Published: true,
		Active:    true,
	}
}

// eventOn returns a date falling on the given weekday (0 = Sunday)
func eventOn(weekday int) time.Time {
	// 2026-08-23 is a Sunday
	return time.Date(2026, 8, 23+weekday, 0, 0, 0, 0, time.UTC)
}

func TestMatcher_CategoryOfferings(t *testing.T) {
	m := &usecase.Matcher{
		Day:          2,
		Aliases:      usecase.AliasSet{"trivia": {}, "trivia night": {}},
		DisplayNames: map[string]string{"trivia": "Trivia Night"},
	}

	t.Run("custom title wins over display name", func(t *testing.T) {
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			Offerings: []domain.RecurringOffering{
				{Category: "trivia", CustomTitle: ptrString("Tap Trivia"), DayOfWeek: 2, IsActive: true},
			},
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		assert.Equal(t, []string{"Tap Trivia"}, res.Labels)
	})

	t.Run("display name used without custom title", func(t *testing.T) {
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			Offerings: []domain.RecurringOffering{
				{Category: "TRIVIA", DayOfWeek: 2, IsActive: true},
			},
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		assert.Equal(t, []string{"Trivia Night"}, res.Labels)
	})

	t.Run("wrong day excluded", func(t *testing.T) {
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			Offerings: []domain.RecurringOffering{
				{Category: "trivia", DayOfWeek: 3, IsActive: true},
			},
		}

		_, ok := m.Match(v)
		assert.False(t, ok)
	})

	t.Run("inactive excluded", func(t *testing.T) {
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			Offerings: []domain.RecurringOffering{
				{Category: "trivia", DayOfWeek: 2, IsActive: false},
			},
		}

		_, ok := m.Match(v)
		assert.False(t, ok)
	})
}

func TestMatcher_SpecialOnlyAndFlags(t *testing.T) {
	m := &usecase.Matcher{
		Day:         5,
		Aliases:     usecase.AliasSet{"karaoke": {}},
		SpecialOnly: true,
	}

	v := domain.VenueWithListings{
		Venue: baseVenue(),
		Offerings: []domain.RecurringOffering{
			{Category: "karaoke", CustomTitle: ptrString("Karaoke Deluxe"), DayOfWeek: 5, IsSpecial: true, IsActive: true},
			{Category: "karaoke", CustomTitle: ptrString("Regular Karaoke"), DayOfWeek: 5, IsNew: true, IsActive: true},
		},
	}

	res, ok := m.Match(v)

	assert.True(t, ok)
	// Non-special offering is filtered out of labels
	assert.Equal(t, []string{"Karaoke Deluxe"}, res.Labels)
	// but flags still account for every category match
	assert.True(t, res.HasSpecial)
	assert.True(t, res.HasNew)
}

func TestMatcher_HappeningNow(t *testing.T) {
	v := domain.VenueWithListings{
		Venue: baseVenue(),
		Offerings: []domain.RecurringOffering{
			{Category: "trivia", CustomTitle: ptrString("Early Trivia"), DayOfWeek: 2,
				StartTime: ptrString("16:00"), EndTime: ptrString("18:00"), IsActive: true},
			{Category: "trivia", CustomTitle: ptrString("No Window Trivia"), DayOfWeek: 2, IsActive: true},
		},
	}

	t.Run("inside window matches", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:          2,
			Aliases:      usecase.AliasSet{"trivia": {}},
			HappeningNow: true,
			Now:          "17:00",
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		assert.Equal(t, []string{"Early Trivia"}, res.Labels)
	})

	t.Run("window boundaries inclusive", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:          2,
			Aliases:      usecase.AliasSet{"trivia": {}},
			HappeningNow: true,
			Now:          "18:00",
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		assert.Equal(t, []string{"Early Trivia"}, res.Labels)
	})

	t.Run("events keep matching regardless of time", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:          2,
			Aliases:      usecase.AliasSet{"trivia": {}},
			HappeningNow: true,
			Now:          "23:59",
		}
		ve := domain.VenueWithListings{
			Venue: baseVenue(),
			Events: []domain.Event{
				{Title: "Championship Quiz", Category: "trivia", Date: eventOn(2), IsActive: true},
			},
		}

		res, ok := m.Match(ve)

		assert.True(t, ok)
		// Events carry no live window, the time filter does not touch them
		assert.Equal(t, []string{"Championship Quiz"}, res.Labels)
	})

	t.Run("outside window excluded", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:          2,
			Aliases:      usecase.AliasSet{"trivia": {}},
			HappeningNow: true,
			Now:          "20:00",
		}

		_, ok := m.Match(v)
		assert.False(t, ok)
	})
}

func TestMatcher_DrinkSentinel(t *testing.T) {
	v := domain.VenueWithListings{
		Venue: baseVenue(),
		Events: []domain.Event{
			{Title: "Beer Pong Night", Category: "happy-hour", Date: eventOn(4), IsActive: true},
		},
		DrinkSpecials: []domain.DrinkSpecial{
			{Name: "Half-Price Drafts", DaysOfWeek: []int64{4}, StartTime: "16:00", EndTime: "18:00", IsActive: true},
			{Name: "Daily Well Drinks", DaysOfWeek: nil, StartTime: "11:00", EndTime: "23:00", IsActive: true},
		},
	}

	t.Run("drink specials replace events", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:           4,
			Aliases:       usecase.AliasSet{"happy-hour": {}, "happy hour": {}},
			DrinkSentinel: true,
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		// Empty day set means every day
		assert.Equal(t, []string{"Half-Price Drafts", "Daily Well Drinks"}, res.Labels)
	})

	t.Run("happening now filters by window", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:           4,
			Aliases:       usecase.AliasSet{"happy-hour": {}},
			DrinkSentinel: true,
			HappeningNow:  true,
			Now:           "20:00",
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		assert.Equal(t, []string{"Daily Well Drinks"}, res.Labels)
	})

	t.Run("wrong day excluded", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:           1,
			Aliases:       usecase.AliasSet{"happy-hour": {}},
			DrinkSentinel: true,
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		assert.Equal(t, []string{"Daily Well Drinks"}, res.Labels)
	})
}

func TestMatcher_FoodSentinel(t *testing.T) {
	v := domain.VenueWithListings{
		Venue: baseVenue(),
		FoodSpecials: []domain.FoodSpecial{
			{Name: "Taco Tuesday", SpecialDays: []int64{2}, IsSpecial: true, IsActive: true},
			{Name: "Old Menu", SpecialDays: []int64{2}, IsSpecial: false, IsActive: true},
		},
	}

	m := &usecase.Matcher{
		Day:          2,
		Aliases:      usecase.AliasSet{"food-special": {}},
		FoodSentinel: true,
	}

	res, ok := m.Match(v)

	assert.True(t, ok)
	// Food specials require the is_special flag regardless of day set
	assert.Equal(t, []string{"Taco Tuesday"}, res.Labels)
}

func TestMatcher_Events(t *testing.T) {
	m := &usecase.Matcher{
		Day:     6,
		Aliases: usecase.AliasSet{"live-music": {}, "live music": {}},
	}

	t.Run("event on matching weekday", func(t *testing.T) {
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			Events: []domain.Event{
				{Title: "The Midnight Owls", Category: "live-music", Date: eventOn(6), IsActive: true},
				{Title: "Jazz Brunch", Category: "live-music", Date: eventOn(0), IsActive: true},
			},
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		assert.Equal(t, []string{"The Midnight Owls"}, res.Labels)
	})

	t.Run("category fallback when title empty", func(t *testing.T) {
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			Events: []domain.Event{
				{Title: "", Category: "live-music", Date: eventOn(6), IsActive: true},
			},
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		assert.Equal(t, []string{"live-music"}, res.Labels)
	})
}

func TestMatcher_Keyword(t *testing.T) {
	t.Run("keyword matches food special by name", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:     3,
			Aliases: usecase.AliasSet{"trivia": {}},
			Keyword: "wings",
		}
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			FoodSpecials: []domain.FoodSpecial{
				{Name: "Buffalo Wings", SpecialDays: []int64{3}, IsSpecial: true, IsActive: true},
			},
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		assert.Equal(t, []string{"Buffalo Wings"}, res.Labels)
	})

	t.Run("keyword matches static amenity", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:     3,
			Aliases: usecase.AliasSet{"trivia": {}},
			Keyword: "pool",
		}
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			Amenities: []domain.StaticAmenity{
				{Name: "Pool Table"},
				{Name: "Darts"},
			},
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		assert.Equal(t, []string{"Pool Table"}, res.Labels)
	})

	t.Run("special only does not drop amenities", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:         3,
			Aliases:     usecase.AliasSet{"trivia": {}},
			Keyword:     "pool",
			SpecialOnly: true,
		}
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			Offerings: []domain.RecurringOffering{
				{Category: "trivia", CustomTitle: ptrString("Pub Trivia"), DayOfWeek: 3, IsActive: true},
			},
			Amenities: []domain.StaticAmenity{
				{Name: "Pool Table"},
			},
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		// The non-special offering is filtered, the amenity stays
		assert.Equal(t, []string{"Pool Table"}, res.Labels)
	})

	t.Run("duplicate label when both category and keyword match", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:     3,
			Aliases: usecase.AliasSet{"trivia": {}},
			Keyword: "trivia",
		}
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			Offerings: []domain.RecurringOffering{
				{Category: "trivia", CustomTitle: ptrString("Pub Trivia"), DayOfWeek: 3, IsActive: true},
			},
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		assert.Equal(t, []string{"Pub Trivia", "Pub Trivia"}, res.Labels)
	})

	t.Run("keyword gate drops venue without any keyword hit", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:     3,
			Aliases: usecase.AliasSet{"trivia": {}},
			Keyword: "zzzz",
		}
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			Offerings: []domain.RecurringOffering{
				{Category: "trivia", CustomTitle: ptrString("Pub Trivia"), DayOfWeek: 3, IsActive: true},
			},
		}

		_, ok := m.Match(v)
		assert.False(t, ok)
	})

	t.Run("venue name satisfies the gate", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:     3,
			Aliases: usecase.AliasSet{"trivia": {}},
			Keyword: "anchor",
		}
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			Offerings: []domain.RecurringOffering{
				{Category: "trivia", CustomTitle: ptrString("Pub Trivia"), DayOfWeek: 3, IsActive: true},
			},
		}

		res, ok := m.Match(v)

		assert.True(t, ok)
		assert.Equal(t, []string{"Pub Trivia"}, res.Labels)
	})

	t.Run("keyword respects day semantics", func(t *testing.T) {
		m := &usecase.Matcher{
			Day:     3,
			Aliases: usecase.AliasSet{"trivia": {}},
			Keyword: "wings",
		}
		v := domain.VenueWithListings{
			Venue: baseVenue(),
			FoodSpecials: []domain.FoodSpecial{
				{Name: "Buffalo Wings", SpecialDays: []int64{5}, IsSpecial: true, IsActive: true},
			},
		}

		_, ok := m.Match(v)
		assert.False(t, ok)
	})
}

func TestMatcher_LabelOrder(t *testing.T) {
	// Category offerings come first, then category events, then keyword hits
	m := &usecase.Matcher{
		Day:     6,
		Aliases: usecase.AliasSet{"live-music": {}},
		Keyword: "patio",
	}
	v := domain.VenueWithListings{
		Venue: baseVenue(),
		Offerings: []domain.RecurringOffering{
			{Category: "live-music", CustomTitle: ptrString("Acoustic Saturdays"), DayOfWeek: 6, IsActive: true},
		},
		Events: []domain.Event{
			{Title: "Patio Concert", Category: "live-music", Date: eventOn(6), IsActive: true},
		},
		Amenities: []domain.StaticAmenity{
			{Name: "Heated Patio"},
		},
	}

	res, ok := m.Match(v)

	assert.True(t, ok)
	assert.Equal(t, []string{
		"Acoustic Saturdays", // category offering
		"Patio Concert",      // category event
		"Heated Patio",       // keyword amenity
		"Patio Concert",      // keyword event, duplicate kept
	}, res.Labels)
}

func TestMatcher_NoMatches(t *testing.T) {
	m := &usecase.Matcher{
		Day:     1,
		Aliases: usecase.AliasSet{"trivia": {}},
	}
	v := domain.VenueWithListings{
		Venue: baseVenue(),
		Amenities: []domain.StaticAmenity{
			{Name: "Pool Table"},
		},
	}

	_, ok := m.Match(v)
	assert.False(t, ok)
}
