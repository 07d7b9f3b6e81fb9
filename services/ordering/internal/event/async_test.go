package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
)

// recordingSink собирает все доставленные события
type recordingSink struct {
	mu     sync.Mutex
	events []TelemetryEvent
}

func (s *recordingSink) Emit(_ context.Context, event TelemetryEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func testEvent(orderID string) TelemetryEvent {
	return TelemetryEvent{
		OrderID:   orderID,
		OrderType: domain.OrderTypeGrocery,
		Status:    domain.StatusOK,
		EmittedAt: time.Now().UTC(),
	}
}

func TestAsyncPublisher(t *testing.T) {
	t.Run("published events reach the sink", func(t *testing.T) {
		// Arrange
		sink := &recordingSink{}
		publisher := NewAsyncPublisher(zap.NewNop(), sink, 8)
		go publisher.Run()

		// Act
		publisher.Publish(testEvent("order-1"))
		publisher.Publish(testEvent("order-2"))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, publisher.Close(ctx))

		// Assert: Close дождался доставки всего из очереди
		require.Equal(t, 2, sink.count())
		require.Equal(t, int64(0), publisher.Dropped())
	})

	t.Run("full queue drops events without blocking", func(t *testing.T) {
		// Arrange: Run не запущен, очередь никто не читает
		sink := &recordingSink{}
		publisher := NewAsyncPublisher(zap.NewNop(), sink, 2)

		// Act: третье событие не помещается
		done := make(chan struct{})
		go func() {
			publisher.Publish(testEvent("order-1"))
			publisher.Publish(testEvent("order-2"))
			publisher.Publish(testEvent("order-3"))
			close(done)
		}()

		// Assert: Publish не блокирует даже с заполненной очередью
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Publish blocked on full queue")
		}
		require.Equal(t, int64(1), publisher.Dropped())
	})

	t.Run("publish after close drops event without panic", func(t *testing.T) {
		// Arrange
		sink := &recordingSink{}
		publisher := NewAsyncPublisher(zap.NewNop(), sink, 8)
		go publisher.Run()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, publisher.Close(ctx))

		// Act: очередь уже закрыта
		publisher.Publish(testEvent("order-late"))

		// Assert: событие отброшено, а не отправлено в закрытый канал
		require.Equal(t, int64(1), publisher.Dropped())
		require.Equal(t, 0, sink.count())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		// Arrange
		sink := &recordingSink{}
		publisher := NewAsyncPublisher(zap.NewNop(), sink, 8)
		go publisher.Run()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		// Act & Assert
		require.NoError(t, publisher.Close(ctx))
		require.NoError(t, publisher.Close(ctx))
	})

	t.Run("close delivers already queued events", func(t *testing.T) {
		// Arrange
		sink := &recordingSink{}
		publisher := NewAsyncPublisher(zap.NewNop(), sink, 8)

		publisher.Publish(testEvent("order-1"))
		publisher.Publish(testEvent("order-2"))
		publisher.Publish(testEvent("order-3"))

		// Доставка стартует уже после постановки в очередь
		go publisher.Run()

		// Act
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		err := publisher.Close(ctx)

		// Assert
		require.NoError(t, err)
		require.Equal(t, 3, sink.count())
	})
}
