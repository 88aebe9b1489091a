package repository

import (
	"context"

	"github.com/venue-discovery/internal/domain"
)

// VenueRepository - доступ к каталогу заведений и их листингам (только чтение)
type VenueRepository interface {
	// SearchCandidates выполняет первичную выборку: правило видимости,
	// опциональный город и OR структурированных условий по листингам.
	SearchCandidates(ctx context.Context, filter domain.SearchFilter) ([]domain.VenueWithListings, error)

	// SearchByCity выполняет fallback-выборку: только видимость + город,
	// без условий по категориям/дням/ключевым словам.
	SearchByCity(ctx context.Context, cityKey string, limit int) ([]domain.VenueWithListings, error)

	// GetCategories возвращает каталог категорий активности
	GetCategories(ctx context.Context) ([]domain.ActivityCategory, error)
}
