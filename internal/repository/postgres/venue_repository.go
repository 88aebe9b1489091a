package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/venue-discovery/internal/domain"
	"github.com/venue-discovery/internal/domain/repository"
	"github.com/venue-discovery/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type venueRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewVenueRepository(db *DB) repository.VenueRepository {
	return &venueRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Правило видимости: опубликовано или бесплатный листинг, и заведение активно
const visibleVenue = `(v.published OR v.free_listing) AND v.active`

const venueColumns = `
	v.id, v.name, v.slug, v.address, v.city, v.state, v.city_key,
	v.venue_type, v.lat, v.lon, v.published, v.free_listing, v.active`

// SearchCandidates выполняет первичную выборку кандидатов.
// SQL намеренно грубее матчера: он решает только, у кого из видимых заведений
// есть хоть один листинг, подходящий под OR структурированных условий.
// Точную семантику (окна времени, sentinel-подмены, порядок лейблов)
// пересчитывает матчер по уже загруженным листингам.
func (r *venueRepository) SearchCandidates(ctx context.Context, filter domain.SearchFilter) ([]domain.VenueWithListings, error) {
	query := `SELECT ` + venueColumns + `
		FROM venues v
		WHERE ` + visibleVenue

	var args []interface{}
	argIdx := 1

	if filter.CityKey != "" {
		query += fmt.Sprintf(" AND v.city_key = $%d", argIdx)
		args = append(args, filter.CityKey)
		argIdx++
	}

	var conds []string

	// Регулярные предложения: день недели + категория из набора алиасов
	conds = append(conds, fmt.Sprintf(`EXISTS (
		SELECT 1 FROM recurring_offerings o
		WHERE o.venue_id = v.id AND o.is_active
		  AND o.day_of_week = $%d
		  AND lower(o.category) = ANY($%d)
	)`, argIdx, argIdx+1))
	args = append(args, filter.Day, pq.Array(filter.Aliases))
	dayArg, aliasArg := argIdx, argIdx+1
	argIdx += 2

	// События: день недели выводится из даты
	conds = append(conds, fmt.Sprintf(`EXISTS (
		SELECT 1 FROM events e
		WHERE e.venue_id = v.id AND e.is_active
		  AND EXTRACT(DOW FROM e.event_date)::int = $%d
		  AND lower(e.category) = ANY($%d)
	)`, dayArg, aliasArg))

	// Sentinel-условия: пустой набор дней означает "каждый день"
	if filter.DrinkSentinel {
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM drink_specials d
			WHERE d.venue_id = v.id AND d.is_active
			  AND (cardinality(d.days_of_week) = 0 OR $%d = ANY(d.days_of_week))
		)`, dayArg))
	}
	if filter.FoodSentinel {
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM food_specials f
			WHERE f.venue_id = v.id AND f.is_active AND f.is_special
			  AND (cardinality(f.special_days) = 0 OR $%d = ANY(f.special_days))
		)`, dayArg))
	}

	if filter.Keyword != "" {
		kw := fmt.Sprintf("$%d", argIdx)
		args = append(args, "%"+filter.Keyword+"%")
		argIdx++

		conds = append(conds,
			fmt.Sprintf(`(v.name ILIKE %s OR v.address ILIKE %s OR v.city ILIKE %s OR v.venue_type ILIKE %s)`, kw, kw, kw, kw),
			fmt.Sprintf(`EXISTS (SELECT 1 FROM recurring_offerings o WHERE o.venue_id = v.id AND o.is_active AND (o.custom_title ILIKE %s OR o.category ILIKE %s))`, kw, kw),
			fmt.Sprintf(`EXISTS (SELECT 1 FROM events e WHERE e.venue_id = v.id AND e.is_active AND (e.title ILIKE %s OR e.category ILIKE %s))`, kw, kw),
			fmt.Sprintf(`EXISTS (SELECT 1 FROM drink_specials d WHERE d.venue_id = v.id AND d.is_active AND d.name ILIKE %s)`, kw),
			fmt.Sprintf(`EXISTS (SELECT 1 FROM food_specials f WHERE f.venue_id = v.id AND f.is_active AND f.name ILIKE %s)`, kw),
			fmt.Sprintf(`EXISTS (SELECT 1 FROM static_amenities a WHERE a.venue_id = v.id AND a.name ILIKE %s)`, kw),
		)
	}

	query += " AND (" + strings.Join(conds, " OR ") + ")"
	query += fmt.Sprintf(" ORDER BY v.id LIMIT $%d", argIdx)
	args = append(args, filter.Limit)

	venues, err := r.selectVenues(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to search candidate venues", zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	return r.loadListings(ctx, venues)
}

// SearchByCity - fallback-выборка: только видимость и город, без условий по листингам
func (r *venueRepository) SearchByCity(ctx context.Context, cityKey string, limit int) ([]domain.VenueWithListings, error) {
	query := `SELECT ` + venueColumns + `
		FROM venues v
		WHERE ` + visibleVenue + `
		  AND v.city_key = $1
		ORDER BY v.id
		LIMIT $2`

	venues, err := r.selectVenues(ctx, query, cityKey, limit)
	if err != nil {
		r.logger.Error("Failed to search venues by city",
			zap.String("city_key", cityKey),
			zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}

	return r.loadListings(ctx, venues)
}

func (r *venueRepository) GetCategories(ctx context.Context) ([]domain.ActivityCategory, error) {
	query := `
		SELECT id, key, display_name, icon, sort_order
		FROM activity_categories
		ORDER BY sort_order, key
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to get activity categories", zap.Error(err))
		return nil, errors.ErrStoreUnavailable
	}
	defer rows.Close()

	var categories []domain.ActivityCategory
	for rows.Next() {
		var c domain.ActivityCategory
		err := rows.Scan(&c.ID, &c.Key, &c.DisplayName, &c.Icon, &c.SortOrder)
		if err != nil {
			continue
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (r *venueRepository) selectVenues(ctx context.Context, query string, args ...interface{}) ([]domain.Venue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []domain.Venue
	for rows.Next() {
		var v domain.Venue
		err := rows.Scan(
			&v.ID, &v.Name, &v.Slug, &v.Address, &v.City, &v.State, &v.CityKey,
			&v.VenueType, &v.Lat, &v.Lon, &v.Published, &v.FreeListing, &v.Active,
		)
		if err != nil {
			r.logger.Error("Failed to scan venue", zap.Error(err))
			continue
		}
		venues = append(venues, v)
	}

	return venues, rows.Err()
}

// loadListings загружает листинги всех пяти видов для набора заведений
// пятью запросами venue_id = ANY($1) и раскладывает их по заведениям.
func (r *venueRepository) loadListings(ctx context.Context, venues []domain.Venue) ([]domain.VenueWithListings, error) {
	result := make([]domain.VenueWithListings, len(venues))
	if len(venues) == 0 {
		return result, nil
	}

	ids := make([]int64, len(venues))
	byID := make(map[int64]*domain.VenueWithListings, len(venues))
	for i, v := range venues {
		ids[i] = v.ID
		result[i].Venue = v
		byID[v.ID] = &result[i]
	}

	if err := r.loadOfferings(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadEvents(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadDrinkSpecials(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadFoodSpecials(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadAmenities(ctx, ids, byID); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *venueRepository) loadOfferings(ctx context.Context, ids []int64, byID map[int64]*domain.VenueWithListings) error {
	query := `
		SELECT id, venue_id, category, custom_title, day_of_week,
		       start_time, end_time, is_special, is_new, is_active
		FROM recurring_offerings
		WHERE venue_id = ANY($1) AND is_active
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to load recurring offerings", zap.Error(err))
		return errors.ErrStoreUnavailable
	}
	defer rows.Close()

	for rows.Next() {
		var o domain.RecurringOffering
		err := rows.Scan(
			&o.ID, &o.VenueID, &o.Category, &o.CustomTitle, &o.DayOfWeek,
			&o.StartTime, &o.EndTime, &o.IsSpecial, &o.IsNew, &o.IsActive,
		)
		if err != nil {
			continue
		}
		if v, ok := byID[o.VenueID]; ok {
			v.Offerings = append(v.Offerings, o)
		}
	}
	return rows.Err()
}

func (r *venueRepository) loadEvents(ctx context.Context, ids []int64, byID map[int64]*domain.VenueWithListings) error {
	query := `
		SELECT id, venue_id, title, category, event_date,
		       start_time, end_time, is_special, is_new, is_active
		FROM events
		WHERE venue_id = ANY($1) AND is_active
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to load events", zap.Error(err))
		return errors.ErrStoreUnavailable
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.Event
		err := rows.Scan(
			&e.ID, &e.VenueID, &e.Title, &e.Category, &e.Date,
			&e.StartTime, &e.EndTime, &e.IsSpecial, &e.IsNew, &e.IsActive,
		)
		if err != nil {
			continue
		}
		if v, ok := byID[e.VenueID]; ok {
			v.Events = append(v.Events, e)
		}
	}
	return rows.Err()
}

func (r *venueRepository) loadDrinkSpecials(ctx context.Context, ids []int64, byID map[int64]*domain.VenueWithListings) error {
	query := `
		SELECT id, venue_id, name, days_of_week, start_time, end_time, is_active
		FROM drink_specials
		WHERE venue_id = ANY($1) AND is_active
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to load drink specials", zap.Error(err))
		return errors.ErrStoreUnavailable
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.DrinkSpecial
		var days pq.Int64Array
		err := rows.Scan(&d.ID, &d.VenueID, &d.Name, &days, &d.StartTime, &d.EndTime, &d.IsActive)
		if err != nil {
			continue
		}
		d.DaysOfWeek = []int64(days)
		if v, ok := byID[d.VenueID]; ok {
			v.DrinkSpecials = append(v.DrinkSpecials, d)
		}
	}
	return rows.Err()
}

func (r *venueRepository) loadFoodSpecials(ctx context.Context, ids []int64, byID map[int64]*domain.VenueWithListings) error {
	query := `
		SELECT id, venue_id, name, special_days, is_special, is_active
		FROM food_specials
		WHERE venue_id = ANY($1) AND is_active
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to load food specials", zap.Error(err))
		return errors.ErrStoreUnavailable
	}
	defer rows.Close()

	for rows.Next() {
		var f domain.FoodSpecial
		var days pq.Int64Array
		err := rows.Scan(&f.ID, &f.VenueID, &f.Name, &days, &f.IsSpecial, &f.IsActive)
		if err != nil {
			continue
		}
		f.SpecialDays = []int64(days)
		if v, ok := byID[f.VenueID]; ok {
			v.FoodSpecials = append(v.FoodSpecials, f)
		}
	}
	return rows.Err()
}

func (r *venueRepository) loadAmenities(ctx context.Context, ids []int64, byID map[int64]*domain.VenueWithListings) error {
	// У удобств нет флага активности - они всегда доступны
	query := `
		SELECT id, venue_id, name
		FROM static_amenities
		WHERE venue_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to load static amenities", zap.Error(err))
		return errors.ErrStoreUnavailable
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.StaticAmenity
		err := rows.Scan(&a.ID, &a.VenueID, &a.Name)
		if err != nil {
			continue
		}
		if v, ok := byID[a.VenueID]; ok {
			v.Amenities = append(v.Amenities, a)
		}
	}
	return rows.Err()
}
