package dto

import (
	"github.com/venue-discovery/internal/pkg/utils"
)

// DiscoverRequest - запрос на подбор заведений
//
// День и активность обязательны; остальные поля опциональны и деградируют
// мягко: нечисловые, неположительные и выходящие за допустимые границы
// значения distance/lat/lng трактуются как отсутствующие.
type DiscoverRequest struct {
	Day          int    `json:"day" validate:"min=0,max=6"`
	Activity     string `json:"activity" validate:"required"`
	City         string `json:"city,omitempty"`
	Keyword      string `json:"q,omitempty"`
	SpecialOnly  bool   `json:"special,omitempty"`
	HappeningNow bool   `json:"happening_now,omitempty"`

	// Гео-фильтр активен только когда заданы все три значения
	Distance *float64 `json:"distance,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lng,omitempty"`
}

// HasGeoFilter проверяет, что заданы радиус и обе координаты и что они
// осмысленны: радиус строго положительный, координаты в пределах WGS84
func (r *DiscoverRequest) HasGeoFilter() bool {
	if r.Distance == nil || r.Lat == nil || r.Lon == nil {
		return false
	}
	return *r.Distance > 0 && utils.ValidateCoordinates(*r.Lat, *r.Lon)
}
