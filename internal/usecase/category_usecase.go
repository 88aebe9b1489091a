package usecase

import (
	"context"

	"github.com/venue-discovery/internal/domain/repository"
	"github.com/venue-discovery/internal/usecase/dto"
	"go.uber.org/zap"
)

// CategoryUseCase - каталог категорий активности
type CategoryUseCase interface {
	// ListCategories возвращает каталог в порядке sort_order
	ListCategories(ctx context.Context) (*dto.CategoriesResponse, error)
}

type categoryUseCase struct {
	venueRepo repository.VenueRepository
	logger    *zap.Logger
}

// NewCategoryUseCase создает новый экземпляр CategoryUseCase
func NewCategoryUseCase(venueRepo repository.VenueRepository, logger *zap.Logger) CategoryUseCase {
	return &categoryUseCase{
		venueRepo: venueRepo,
		logger:    logger,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := uc.venueRepo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CategoriesResponse{
		Categories: categories,
		Total:      len(categories),
	}, nil
}
