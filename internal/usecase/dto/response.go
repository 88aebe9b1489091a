package dto

import "github.com/venue-discovery/internal/domain"

// DiscoverResponse - ответ на подбор заведений
type DiscoverResponse struct {
	Venues []VenueResult `json:"venues"`
	Total  int           `json:"total"`
}

// VenueResult - заведение в выдаче с подошедшими листингами.
// Labels могут содержать дубликаты: листинг, подошедший и по категории,
// и по ключевому слову, попадает в список дважды (потребители считают бейджи
// по количеству).
type VenueResult struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	Labels     []string `json:"labels"`
	HasSpecial bool     `json:"has_special"`
	HasNew     bool     `json:"has_new"`
	Distance   *float64 `json:"distance,omitempty"` // miles
}

// CategoriesResponse - каталог категорий активности
type CategoriesResponse struct {
	Categories []domain.ActivityCategory `json:"categories"`
	Total      int                       `json:"total"`
}
