package usecase

import (
	"strings"

	"github.com/venue-discovery/internal/domain"
)

// Matcher решает по каждому заведению, какие листинги удовлетворяют запросу,
// и собирает список лейблов ("сегодняшние предложения").
// Каждый вид листинга оценивается независимо, диспетчеризация по конкретному
// типу, а не по наличию полей.
type Matcher struct {
	Day          int
	Aliases      AliasSet
	Keyword      string // нижний регистр, обрезанный; "" = без ключевого слова
	SpecialOnly  bool
	HappeningNow bool
	Now          string // локальное время "HH:MM"

	DrinkSentinel bool
	FoodSentinel  bool

	// lower(key) -> display name из каталога, для лейблов регулярных предложений
	DisplayNames map[string]string
}

// MatchResult - результат оценки одного заведения
type MatchResult struct {
	Labels     []string
	HasSpecial bool
	HasNew     bool
}

// Match оценивает заведение. Возвращает false, если заведение не попадает
// в выдачу (пустой список лейблов или не пройден keyword-гейт).
//
// Порядок сборки лейблов фиксирован: предложения по категории → события
// по категории (подавляются sentinel-активностью) → drink/food-акции
// (только при соответствующем sentinel) → удобства по ключевому слову →
// листинги по ключевому слову. Дубликаты сохраняются.
func (m *Matcher) Match(v domain.VenueWithListings) (MatchResult, bool) {
	var res MatchResult

	// 1. Регулярные предложения по категории
	for _, o := range v.Offerings {
		if !o.IsActive || o.DayOfWeek != m.Day || !m.Aliases.Contains(o.Category) {
			continue
		}
		// Флаги считаются по всем категорийным совпадениям,
		// до применения special-only фильтра
		res.HasSpecial = res.HasSpecial || o.IsSpecial
		res.HasNew = res.HasNew || o.IsNew
		if m.SpecialOnly && !o.IsSpecial {
			continue
		}
		if m.HappeningNow && !m.inWindow(o.StartTime, o.EndTime) {
			continue
		}
		res.Labels = append(res.Labels, m.offeringLabel(o))
	}

	// 2. События по категории. Sentinel-активность подменяет события акциями.
	// Фильтр "happening now" на события не действует.
	if !m.DrinkSentinel && !m.FoodSentinel {
		for _, e := range v.Events {
			if !e.IsActive || e.Weekday() != m.Day || !m.Aliases.Contains(e.Category) {
				continue
			}
			res.HasSpecial = res.HasSpecial || e.IsSpecial
			res.HasNew = res.HasNew || e.IsNew
			if m.SpecialOnly && !e.IsSpecial {
				continue
			}
			res.Labels = append(res.Labels, eventLabel(e))
		}
	}

	// 3. Акции на напитки (только при drink sentinel)
	if m.DrinkSentinel {
		for _, d := range v.DrinkSpecials {
			if !d.IsActive || !d.MatchesDay(m.Day) {
				continue
			}
			if m.HappeningNow && !inTimeWindow(m.Now, d.StartTime, d.EndTime) {
				continue
			}
			res.Labels = append(res.Labels, d.Name)
		}
	}

	// 4. Акции на еду (только при food sentinel)
	if m.FoodSentinel {
		for _, f := range v.FoodSpecials {
			if !f.IsActive || !f.MatchesDay(m.Day) {
				continue
			}
			res.Labels = append(res.Labels, f.Name)
		}
	}

	// 5. Совпадения по ключевому слову - дополнение к категорийным,
	// категорийный предикат игнорируется, семантика дней сохраняется
	if m.Keyword != "" {
		for _, a := range v.Amenities {
			if m.containsKeyword(a.Name) {
				res.Labels = append(res.Labels, a.Name)
			}
		}
		for _, o := range v.Offerings {
			if !o.IsActive || o.DayOfWeek != m.Day {
				continue
			}
			if m.containsKeyword(strPtr(o.CustomTitle)) || m.containsKeyword(o.Category) {
				res.Labels = append(res.Labels, m.offeringLabel(o))
			}
		}
		for _, e := range v.Events {
			if !e.IsActive || e.Weekday() != m.Day {
				continue
			}
			if m.containsKeyword(e.Title) || m.containsKeyword(e.Category) {
				res.Labels = append(res.Labels, eventLabel(e))
			}
		}
		for _, d := range v.DrinkSpecials {
			if d.IsActive && d.MatchesDay(m.Day) && m.containsKeyword(d.Name) {
				res.Labels = append(res.Labels, d.Name)
			}
		}
		for _, f := range v.FoodSpecials {
			if f.IsActive && f.MatchesDay(m.Day) && m.containsKeyword(f.Name) {
				res.Labels = append(res.Labels, f.Name)
			}
		}

		// Keyword-гейт: заведение остаётся в выдаче только если слово нашлось
		// в самом заведении, в любом собранном лейбле или в названии удобства
		if !m.passesKeywordGate(v, res.Labels) {
			return MatchResult{}, false
		}
	}

	if len(res.Labels) == 0 {
		return MatchResult{}, false
	}
	return res, true
}

func (m *Matcher) passesKeywordGate(v domain.VenueWithListings, labels []string) bool {
	if m.containsKeyword(v.Venue.Name) ||
		m.containsKeyword(v.Venue.Address) ||
		m.containsKeyword(v.Venue.City) ||
		m.containsKeyword(v.Venue.VenueType) {
		return true
	}
	for _, l := range labels {
		if m.containsKeyword(l) {
			return true
		}
	}
	for _, a := range v.Amenities {
		if m.containsKeyword(a.Name) {
			return true
		}
	}
	return false
}

func (m *Matcher) containsKeyword(s string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), m.Keyword)
}

// offeringLabel: кастомный заголовок, иначе display name категории из каталога,
// иначе сырой ключ категории
func (m *Matcher) offeringLabel(o domain.RecurringOffering) string {
	if o.CustomTitle != nil && *o.CustomTitle != "" {
		return *o.CustomTitle
	}
	if name, ok := m.DisplayNames[strings.ToLower(o.Category)]; ok && name != "" {
		return name
	}
	return o.Category
}

// eventLabel: заголовок события, иначе ключ категории
func eventLabel(e domain.Event) string {
	if e.Title != "" {
		return e.Title
	}
	return e.Category
}

// inWindow проверяет окно регулярного предложения. Листинг без окна
// не может содержать текущее время, поэтому при happeningNow не подходит.
func (m *Matcher) inWindow(start, end *string) bool {
	if start == nil || end == nil {
		return false
	}
	return inTimeWindow(m.Now, *start, *end)
}

// inTimeWindow - включительное сравнение "HH:MM" строк; формат с ведущими
// нулями сравнивается лексикографически корректно
func inTimeWindow(now, start, end string) bool {
	if start == "" || end == "" {
		return false
	}
	return start <= now && now <= end
}

func strPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
