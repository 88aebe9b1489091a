package domain

// SearchFilter - структурированные условия первичной выборки кандидатов.
// SQL-слой по этим условиям делает грубое приближение (over-approximation):
// точную проверку семантики дней и окон выполняет матчер в памяти.
type SearchFilter struct {
	// День недели запроса, 0-6 (0 = воскресенье)
	Day int
	// Эквивалентные написания активности, все в нижнем регистре
	Aliases []string
	// Нормализованный ключ города; пустая строка = без фильтра по городу
	CityKey string
	// Ключевое слово, уже обрезанное и в нижнем регистре
	Keyword string
	// Sentinel-активности (см. category.go)
	DrinkSentinel bool
	FoodSentinel  bool
	// Максимум заведений в выборке
	Limit int
}
