package domain

// ActivityCategory - запись каталога категорий активности.
// Каталог ведёт админский сервис; движок читает его на каждый запрос
// и использует как словарь алиасов (key и display_name считаются эквивалентами).
type ActivityCategory struct {
	ID          int64   `json:"id" db:"id"`
	Key         string  `json:"key" db:"key"`
	DisplayName string  `json:"display_name" db:"display_name"`
	Icon        *string `json:"icon,omitempty" db:"icon"`
	SortOrder   int     `json:"sort_order" db:"sort_order"`
}

// Sentinel-активности: зарезервированные значения, при которых вместо событий
// в выдачу попадают акции на напитки или еду.
const (
	ActivityDrinkSpecial = "drink-special"
	ActivityHappyHour    = "happy-hour"
	ActivityFoodSpecial  = "food-special"
)
