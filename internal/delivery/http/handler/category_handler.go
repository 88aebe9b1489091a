package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venue-discovery/internal/pkg/utils"
	"github.com/venue-discovery/internal/usecase"
	"go.uber.org/zap"
)

// CategoryHandler - обработчик каталога категорий активности
type CategoryHandler struct {
	categoryUC usecase.CategoryUseCase
	logger     *zap.Logger
}

// NewCategoryHandler - создание нового CategoryHandler
func NewCategoryHandler(categoryUC usecase.CategoryUseCase, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: categoryUC,
		logger:     logger,
	}
}

// ListCategories godoc
// @Summary Каталог категорий активности
// @Description Возвращает каталог категорий (ключ, отображаемое имя, иконка) в порядке сортировки
// @Tags Categories
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CategoriesResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	result, err := h.categoryUC.ListCategories(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
