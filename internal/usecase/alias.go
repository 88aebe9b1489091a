package usecase

import (
	"sort"
	"strings"

	"github.com/venue-discovery/internal/domain"
)

// AliasSet - множество эквивалентных написаний активности.
// Все значения хранятся в нижнем регистре; сравнение всегда case-insensitive.
type AliasSet map[string]struct{}

// Contains проверяет вхождение строки в множество (без учёта регистра)
func (s AliasSet) Contains(v string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(v))]
	return ok
}

// Values возвращает отсортированный срез для передачи в SQL
func (s AliasSet) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	// детерминированный порядок аргументов запроса
	sort.Strings(out)
	return out
}

// Slugify нормализует строку: нижний регистр, каждая серия не-алфанумерики
// заменяется одним дефисом, ведущие и хвостовые дефисы обрезаются.
func Slugify(s string) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(s) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// BuildAliasSet строит множество эквивалентных написаний для запрошенной
// активности. Никогда не падает: без подходящей записи каталога множество
// деградирует до трёх вариантов сырой строки, и матчинг сводится
// к точному/подстрочному сравнению.
//
// Подходящей считается единственная запись каталога, чей key или display name
// равен сырой активности без учёта регистра.
func BuildAliasSet(activity string, categories []domain.ActivityCategory) (AliasSet, *domain.ActivityCategory) {
	set := make(AliasSet)
	raw := strings.TrimSpace(activity)

	add := func(v string) {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}

	add(raw)
	add(Slugify(raw))

	var matched *domain.ActivityCategory
	for i := range categories {
		c := &categories[i]
		if strings.EqualFold(c.Key, raw) || strings.EqualFold(c.DisplayName, raw) {
			matched = c
			break
		}
	}

	if matched != nil {
		add(matched.Key)
		add(matched.DisplayName)
		add(Slugify(matched.DisplayName))
	}

	return set, matched
}

// SentinelActivity определяет sentinel-активность по нормализованному значению
func SentinelActivity(activity string) (drink, food bool) {
	switch Slugify(activity) {
	case domain.ActivityDrinkSpecial, domain.ActivityHappyHour:
		return true, false
	case domain.ActivityFoodSpecial:
		return false, true
	}
	return false, false
}
