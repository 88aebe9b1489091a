package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/venue-discovery/internal/pkg/errors"
	"github.com/venue-discovery/internal/pkg/utils"
	"github.com/venue-discovery/internal/usecase"
	"github.com/venue-discovery/internal/usecase/dto"
	"go.uber.org/zap"
)

// DiscoveryHandler - обработчик запросов подбора заведений
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUseCase
	logger      *zap.Logger
}

// NewDiscoveryHandler - создание нового DiscoveryHandler
func NewDiscoveryHandler(discoveryUC usecase.DiscoveryUseCase, logger *zap.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: discoveryUC,
		logger:      logger,
	}
}

// Discover godoc
// @Summary Подбор заведений по дню и активности
// @Description Возвращает видимые заведения, у которых на указанный день недели есть подходящие листинги. Каждое заведение сопровождается лейблами подошедших листингов. Опционально фильтрует по городу, ключевому слову, акциям, текущему времени и радиусу.
// @Tags Discovery
// @Accept json
// @Produce json
// @Param day query int true "День недели 0-6 (0 = воскресенье)"
// @Param activity query string true "Категория активности (trivia, karaoke, happy-hour...)"
// @Param city query string false "Город"
// @Param q query string false "Ключевое слово (подстрока)"
// @Param special query bool false "Только акции"
// @Param happeningNow query bool false "Только идущие сейчас"
// @Param distance query number false "Радиус в милях"
// @Param lat query number false "Широта точки поиска"
// @Param lng query number false "Долгота точки поиска"
// @Success 200 {object} utils.SuccessResponse{data=dto.DiscoverResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/discover [get]
func (h *DiscoveryHandler) Discover(c *fiber.Ctx) error {
	req, err := parseDiscoverRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.discoveryUC.Discover(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// parseDiscoverRequest разбирает query-параметры.
// День и активность обязательны; нечисловые значения distance/lat/lng
// трактуются как отсутствующие, а не как ошибка.
func parseDiscoverRequest(c *fiber.Ctx) (*dto.DiscoverRequest, error) {
	dayRaw := c.Query("day")
	if dayRaw == "" {
		return nil, errors.ErrInvalidQuery
	}
	day, err := strconv.Atoi(dayRaw)
	if err != nil {
		return nil, errors.ErrInvalidQuery
	}

	activity := strings.TrimSpace(c.Query("activity"))
	if activity == "" {
		return nil, errors.ErrInvalidQuery
	}

	req := &dto.DiscoverRequest{
		Day:          day,
		Activity:     activity,
		City:         strings.TrimSpace(c.Query("city")),
		Keyword:      strings.TrimSpace(c.Query("q")),
		SpecialOnly:  c.QueryBool("special"),
		HappeningNow: c.QueryBool("happeningNow") || c.QueryBool("happening_now"),
		Distance:     parseFloatParam(c.Query("distance")),
		Lat:          parseFloatParam(c.Query("lat")),
		Lon:          parseFloatParam(c.Query("lng")),
	}

	return req, nil
}

func parseFloatParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
