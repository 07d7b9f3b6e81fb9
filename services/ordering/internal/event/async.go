package event

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Таймаут доставки одного события в sink.
// Событие уже вне критического пути, но вечно висеть на Kafka тоже нельзя
const emitTimeout = 5 * time.Second

// AsyncPublisher публикует телеметрию асинхронно через ограниченную очередь.
// Publish никогда не блокирует: при заполненной очереди событие отбрасывается
// (политика drop-on-full), счётчик потерь пишется в лог. Сбои доставки
// логируются и не видны вызывающему - аналитика не должна влиять
// ни на латентность, ни на успех заказа
type AsyncPublisher struct {
	logger  *zap.Logger
	sink    Sink
	queue   chan TelemetryEvent
	dropped atomic.Int64

	// mu защищает closed и закрытие queue: Publish после Close
	// не должен попасть в закрытый канал
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewAsyncPublisher создаёт publisher с очередью указанного размера.
// Доставку запускает Run
func NewAsyncPublisher(logger *zap.Logger, sink Sink, queueSize int) *AsyncPublisher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &AsyncPublisher{
		logger: logger,
		sink:   sink,
		queue:  make(chan TelemetryEvent, queueSize),
		done:   make(chan struct{}),
	}
}

// Publish ставит событие в очередь доставки.
// Не блокирует: если очередь заполнена, событие отбрасывается.
// После Close события тоже отбрасываются, а не попадают в закрытый канал
func (p *AsyncPublisher) Publish(event TelemetryEvent) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		dropped := p.dropped.Add(1)
		p.logger.Warn("telemetry publisher closed, dropping event",
			zap.String("order_id", event.OrderID),
			zap.Int64("dropped_total", dropped))
		return
	}

	select {
	case p.queue <- event:
	default:
		dropped := p.dropped.Add(1)
		p.logger.Warn("telemetry queue full, dropping event",
			zap.String("order_id", event.OrderID),
			zap.Int64("dropped_total", dropped))
	}
}

// Run читает очередь и доставляет события в sink до вызова Close.
// Запускается в отдельной горутине из app
func (p *AsyncPublisher) Run() {
	for event := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		err := p.sink.Emit(ctx, event)
		cancel()

		if err != nil {
			// Best-effort: потеря события фиксируется только в логе
			p.logger.Error("failed to emit telemetry event",
				zap.String("order_id", event.OrderID),
				zap.Error(err))
		}
	}
	close(p.done)
}

// Dropped возвращает количество отброшенных событий
func (p *AsyncPublisher) Dropped() int64 {
	return p.dropped.Load()
}

// Close останавливает приём новых событий и дожидается доставки
// уже поставленных в очередь. Повторный вызов безопасен
func (p *AsyncPublisher) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
