package domain

// Venue представляет заведение из каталога. Движок подбора читает заведения
// только на чтение; создаются и редактируются они владельцем в другом сервисе.
type Venue struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Slug        string  `json:"slug" db:"slug"`
	Address     string  `json:"address" db:"address"`
	City        string  `json:"city" db:"city"`
	State       string  `json:"state" db:"state"`
	CityKey     string  `json:"-" db:"city_key"`
	VenueType   string  `json:"venue_type" db:"venue_type"`
	Lat         float64 `json:"lat" db:"lat"`
	Lon         float64 `json:"lon" db:"lon"`
	Published   bool    `json:"-" db:"published"`
	FreeListing bool    `json:"-" db:"free_listing"`
	Active      bool    `json:"-" db:"active"`
}

// Visible проверяет правило видимости: заведение участвует в поиске,
// если оно опубликовано или у владельца есть бесплатный листинг, и оно активно.
func (v *Venue) Visible() bool {
	return (v.Published || v.FreeListing) && v.Active
}

// VenueWithListings - заведение вместе со всеми его листингами пяти видов
type VenueWithListings struct {
	Venue         Venue
	Offerings     []RecurringOffering
	Events        []Event
	DrinkSpecials []DrinkSpecial
	FoodSpecials  []FoodSpecial
	Amenities     []StaticAmenity
}
