package domain

import "time"

// Пять видов листингов заведения. Каждый вид несёт свою семантику дня недели,
// поэтому матчер диспетчеризует по конкретному типу, а не по наличию полей.
//
// День недели всегда 0-6, 0 = воскресенье (конвенция time.Weekday).

// RecurringOffering - регулярное предложение (викторина, караоке, живая музыка)
// с одним днём недели и опциональным временным окном.
type RecurringOffering struct {
	ID          int64   `json:"id" db:"id"`
	VenueID     int64   `json:"venue_id" db:"venue_id"`
	Category    string  `json:"category" db:"category"`
	CustomTitle *string `json:"custom_title,omitempty" db:"custom_title"`
	DayOfWeek   int     `json:"day_of_week" db:"day_of_week"`
	StartTime   *string `json:"start_time,omitempty" db:"start_time"`
	EndTime     *string `json:"end_time,omitempty" db:"end_time"`
	IsSpecial   bool    `json:"is_special" db:"is_special"`
	IsNew       bool    `json:"is_new" db:"is_new"`
	IsActive    bool    `json:"-" db:"is_active"`
}

// Event - разовое событие с конкретной календарной датой.
// День недели выводится из даты.
type Event struct {
	ID        int64     `json:"id" db:"id"`
	VenueID   int64     `json:"venue_id" db:"venue_id"`
	Title     string    `json:"title" db:"title"`
	Category  string    `json:"category" db:"category"`
	Date      time.Time `json:"event_date" db:"event_date"`
	StartTime *string   `json:"start_time,omitempty" db:"start_time"`
	EndTime   *string   `json:"end_time,omitempty" db:"end_time"`
	IsSpecial bool      `json:"is_special" db:"is_special"`
	IsNew     bool      `json:"is_new" db:"is_new"`
	IsActive  bool      `json:"-" db:"is_active"`
}

// Weekday возвращает день недели даты события (0 = воскресенье)
func (e *Event) Weekday() int {
	return int(e.Date.Weekday())
}

// DrinkSpecial - акция на напитки с обязательным временным окном.
// Пустой набор дней означает "каждый день".
type DrinkSpecial struct {
	ID         int64   `json:"id" db:"id"`
	VenueID    int64   `json:"venue_id" db:"venue_id"`
	Name       string  `json:"name" db:"name"`
	DaysOfWeek []int64 `json:"days_of_week" db:"days_of_week"`
	StartTime  string  `json:"start_time" db:"start_time"`
	EndTime    string  `json:"end_time" db:"end_time"`
	IsActive   bool    `json:"-" db:"is_active"`
}

// MatchesDay проверяет день по набору дней (пустой набор = каждый день)
func (d *DrinkSpecial) MatchesDay(day int) bool {
	return dayInSet(d.DaysOfWeek, day)
}

// FoodSpecial - акция на еду. Пустой набор дней означает "каждый день",
// но только при установленном флаге is_special.
type FoodSpecial struct {
	ID          int64   `json:"id" db:"id"`
	VenueID     int64   `json:"venue_id" db:"venue_id"`
	Name        string  `json:"name" db:"name"`
	SpecialDays []int64 `json:"special_days" db:"special_days"`
	IsSpecial   bool    `json:"is_special" db:"is_special"`
	IsActive    bool    `json:"-" db:"is_active"`
}

// MatchesDay проверяет день с учётом флага is_special
func (f *FoodSpecial) MatchesDay(day int) bool {
	return f.IsSpecial && dayInSet(f.SpecialDays, day)
}

// StaticAmenity - постоянное удобство заведения (бильярд, дартс, терраса).
// Не имеет ни дня, ни флага активности; участвует только в поиске по ключевому слову.
type StaticAmenity struct {
	ID      int64  `json:"id" db:"id"`
	VenueID int64  `json:"venue_id" db:"venue_id"`
	Name    string `json:"name" db:"name"`
}

func dayInSet(days []int64, day int) bool {
	if len(days) == 0 {
		return true
	}
	for _, d := range days {
		if int(d) == day {
			return true
		}
	}
	return false
}
