package repository

import "context"

// CounterRepository - счётчики показов заведений в выдаче.
// Запись best-effort: вызывающая сторона не ретраит и не ждёт гарантий.
type CounterRepository interface {
	// IncrementVisibility инкрементирует счётчик показов каждому заведению из списка
	IncrementVisibility(ctx context.Context, venueIDs []int64) error

	// GetVisibility возвращает текущее значение счётчика заведения
	GetVisibility(ctx context.Context, venueID int64) (int64, error)
}
