package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Effect - отложенный побочный эффект поиска (инкремент счётчика, публикация
// события в стрим). Выполняется после ответа клиенту и не влияет на выдачу.
type Effect func(ctx context.Context)

// EffectEmitter выполняет побочные эффекты асинхронно через ограниченную
// очередь. При переполненной очереди эффект отбрасывается с логированием:
// счётчики и аналитика допускают потери, ответ клиенту - нет.
type EffectEmitter struct {
	queue   chan Effect
	logger  *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
	once    sync.Once
}

// NewEffectEmitter создаёт эмиттер с очередью queueSize и workers воркерами
func NewEffectEmitter(queueSize, workers int, logger *zap.Logger) *EffectEmitter {
	if queueSize <= 0 {
		queueSize = 256
	}
	if workers <= 0 {
		workers = 4
	}

	e := &EffectEmitter{
		queue:   make(chan Effect, queueSize),
		logger:  logger,
		timeout: 5 * time.Second,
	}

	e.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go e.run()
	}

	logger.Info("Effect emitter started",
		zap.Int("queue_size", queueSize),
		zap.Int("workers", workers))
	return e
}

// Dispatch ставит эффект в очередь без блокировки.
// Возвращает false, если очередь переполнена и эффект отброшен.
func (e *EffectEmitter) Dispatch(effect Effect) bool {
	select {
	case e.queue <- effect:
		return true
	default:
		e.logger.Warn("Effect queue full, dropping effect")
		return false
	}
}

// Close закрывает очередь и дожидается выполнения уже поставленных эффектов
func (e *EffectEmitter) Close() {
	e.once.Do(func() {
		close(e.queue)
	})
	e.wg.Wait()
	e.logger.Info("Effect emitter stopped")
}

func (e *EffectEmitter) run() {
	defer e.wg.Done()
	for effect := range e.queue {
		// Эффект живёт дольше запроса, поэтому контекст запроса не наследуется
		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		effect(ctx)
		cancel()
	}
}
