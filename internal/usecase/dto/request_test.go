package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venue-discovery/internal/usecase/dto"
)

func ptrFloat(f float64) *float64 { return &f }

func TestDiscoverRequest_HasGeoFilter(t *testing.T) {
	tests := []struct {
		name     string
		distance *float64
		lat      *float64
		lon      *float64
		want     bool
	}{
		{"all set and valid", ptrFloat(10), ptrFloat(42.35), ptrFloat(-71.06), true},
		{"missing distance", nil, ptrFloat(42.35), ptrFloat(-71.06), false},
		{"missing latitude", ptrFloat(10), nil, ptrFloat(-71.06), false},
		{"missing longitude", ptrFloat(10), ptrFloat(42.35), nil, false},
		{"zero radius treated as absent", ptrFloat(0), ptrFloat(42.35), ptrFloat(-71.06), false},
		{"negative radius treated as absent", ptrFloat(-5), ptrFloat(42.35), ptrFloat(-71.06), false},
		{"latitude out of range", ptrFloat(10), ptrFloat(91), ptrFloat(-71.06), false},
		{"longitude out of range", ptrFloat(10), ptrFloat(42.35), ptrFloat(-181), false},
		{"boundary coordinates accepted", ptrFloat(10), ptrFloat(-90), ptrFloat(180), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &dto.DiscoverRequest{
				Day:      2,
				Activity: "trivia",
				Distance: tt.distance,
				Lat:      tt.lat,
				Lon:      tt.lon,
			}
			assert.Equal(t, tt.want, r.HasGeoFilter())
		})
	}
}
