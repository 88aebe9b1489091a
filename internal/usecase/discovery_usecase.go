package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/venue-discovery/internal/domain"
	"github.com/venue-discovery/internal/domain/repository"
	"github.com/venue-discovery/internal/pkg/errors"
	"github.com/venue-discovery/internal/pkg/utils"
	"github.com/venue-discovery/internal/pkg/validator"
	"github.com/venue-discovery/internal/usecase/dto"
	"go.uber.org/zap"
)

// candidateLimit - максимум заведений в первичной выборке.
// Гео-фильтр применяется после отсечения, поэтому усечённая выборка
// может дать меньше результатов в радиусе, чем существует фактически.
const candidateLimit = 50

// DiscoveryUseCase - движок подбора заведений
type DiscoveryUseCase interface {
	// Discover выполняет подбор: выборка кандидатов, матчинг листингов,
	// fallback по городу, гео-фильтр и сортировка по расстоянию
	Discover(ctx context.Context, req *dto.DiscoverRequest) (*dto.DiscoverResponse, error)
}

type discoveryUseCase struct {
	venueRepo   repository.VenueRepository
	counterRepo repository.CounterRepository
	streamRepo  repository.StreamRepository
	emitter     *EffectEmitter
	logger      *zap.Logger
	now         func() time.Time
}

// NewDiscoveryUseCase создает новый экземпляр DiscoveryUseCase
func NewDiscoveryUseCase(
	venueRepo repository.VenueRepository,
	counterRepo repository.CounterRepository,
	streamRepo repository.StreamRepository,
	emitter *EffectEmitter,
	logger *zap.Logger,
) DiscoveryUseCase {
	return &discoveryUseCase{
		venueRepo:   venueRepo,
		counterRepo: counterRepo,
		streamRepo:  streamRepo,
		emitter:     emitter,
		logger:      logger,
		now:         time.Now,
	}
}

// NewDiscoveryUseCaseWithClock - конструктор с фиксированными часами для тестов
func NewDiscoveryUseCaseWithClock(
	venueRepo repository.VenueRepository,
	counterRepo repository.CounterRepository,
	streamRepo repository.StreamRepository,
	emitter *EffectEmitter,
	logger *zap.Logger,
	now func() time.Time,
) DiscoveryUseCase {
	uc := NewDiscoveryUseCase(venueRepo, counterRepo, streamRepo, emitter, logger).(*discoveryUseCase)
	uc.now = now
	return uc
}

func (uc *discoveryUseCase) Discover(ctx context.Context, req *dto.DiscoverRequest) (*dto.DiscoverResponse, error) {
	if strings.TrimSpace(req.Activity) == "" {
		return nil, errors.ErrInvalidQuery
	}
	if err := validator.Validate(req); err != nil {
		uc.logger.Debug("Discover request validation failed", zap.Error(err))
		return nil, errors.ErrInvalidQuery.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	// Каталог категорий нужен и для алиасов, и для display name лейблов
	categories, err := uc.venueRepo.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	aliases, _ := BuildAliasSet(req.Activity, categories)
	drinkSentinel, foodSentinel := SentinelActivity(req.Activity)
	keyword := strings.ToLower(strings.TrimSpace(req.Keyword))

	matcher := &Matcher{
		Day:           req.Day,
		Aliases:       aliases,
		Keyword:       keyword,
		SpecialOnly:   req.SpecialOnly,
		HappeningNow:  req.HappeningNow,
		Now:           uc.now().Format("15:04"),
		DrinkSentinel: drinkSentinel,
		FoodSentinel:  foodSentinel,
		DisplayNames:  displayNames(categories),
	}

	filter := domain.SearchFilter{
		Day:           req.Day,
		Aliases:       aliases.Values(),
		CityKey:       Slugify(req.City),
		Keyword:       keyword,
		DrinkSentinel: drinkSentinel,
		FoodSentinel:  foodSentinel,
		Limit:         candidateLimit,
	}

	candidates, err := uc.venueRepo.SearchCandidates(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := uc.matchAll(candidates, matcher)

	// Fallback: при пустой выдаче и заданном городе перечитываем все видимые
	// заведения города и прогоняем через тот же матчер. Правила матчинга
	// не ослабляются, меняется только выборка.
	if len(results) == 0 && filter.CityKey != "" {
		fallback, err := uc.venueRepo.SearchByCity(ctx, filter.CityKey, candidateLimit)
		if err != nil {
			return nil, err
		}
		results = uc.matchAll(fallback, matcher)
	}

	if req.HasGeoFilter() {
		results = filterByRadius(results, *req.Lat, *req.Lon, *req.Distance)
		sort.SliceStable(results, func(i, j int) bool {
			return *results[i].Distance < *results[j].Distance
		})
	}

	uc.dispatchSideEffects(results, req.Activity)

	return &dto.DiscoverResponse{
		Venues: results,
		Total:  len(results),
	}, nil
}

func (uc *discoveryUseCase) matchAll(venues []domain.VenueWithListings, matcher *Matcher) []dto.VenueResult {
	results := make([]dto.VenueResult, 0, len(venues))
	for _, v := range venues {
		// SQL-слой делает грубое приближение, правило видимости перепроверяем
		if !v.Venue.Visible() {
			continue
		}
		m, ok := matcher.Match(v)
		if !ok {
			continue
		}
		results = append(results, dto.VenueResult{
			ID:         v.Venue.ID,
			Name:       v.Venue.Name,
			Slug:       v.Venue.Slug,
			Address:    v.Venue.Address,
			City:       v.Venue.City,
			State:      v.Venue.State,
			Lat:        v.Venue.Lat,
			Lon:        v.Venue.Lon,
			Labels:     m.Labels,
			HasSpecial: m.HasSpecial,
			HasNew:     m.HasNew,
		})
	}
	return results
}

func filterByRadius(results []dto.VenueResult, lat, lon, radius float64) []dto.VenueResult {
	filtered := make([]dto.VenueResult, 0, len(results))
	for i := range results {
		d := utils.HaversineMiles(lat, lon, results[i].Lat, results[i].Lon)
		if d > radius {
			continue
		}
		r := results[i]
		r.Distance = &d
		filtered = append(filtered, r)
	}
	return filtered
}

// dispatchSideEffects ставит в очередь инкремент счётчиков показов и публикацию
// аналитических событий. Оба эффекта best-effort: ошибки логируются и не влияют
// ни на ответ, ни друг на друга.
func (uc *discoveryUseCase) dispatchSideEffects(results []dto.VenueResult, activity string) {
	if len(results) == 0 {
		return
	}

	ids := make([]int64, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	occurred := uc.now()

	uc.emitter.Dispatch(func(ctx context.Context) {
		if err := uc.counterRepo.IncrementVisibility(ctx, ids); err != nil {
			uc.logger.Warn("Failed to increment visibility counters",
				zap.Int("venues", len(ids)),
				zap.Error(err))
		}
	})

	uc.emitter.Dispatch(func(ctx context.Context) {
		for _, id := range ids {
			event := domain.NewSearchAppearEvent(id, activity, occurred)
			if err := uc.streamRepo.PublishToStream(ctx, domain.StreamSearchAppear, event); err != nil {
				uc.logger.Warn("Failed to publish search-appear event",
					zap.Int64("venue_id", id),
					zap.Error(err))
			}
		}
	})
}

func displayNames(categories []domain.ActivityCategory) map[string]string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[strings.ToLower(c.Key)] = c.DisplayName
	}
	return names
}
