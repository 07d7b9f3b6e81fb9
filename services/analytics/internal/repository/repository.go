package repository

import (
	"context"
	"time"
)

// OrderEvent — запись о завершённом заказе для аналитики.
// EventID служит ключом идемпотентности: Kafka даёт at-least-once,
// поэтому повторная доставка не должна искажать статистику
type OrderEvent struct {
	EventID    string
	OrderID    string
	OrderType  string
	Status     string
	ItemsTotal int32
	OccurredAt time.Time
}

// Summary — агрегированная статистика по всем записанным заказам
type Summary struct {
	TotalOrders         int64
	GroceryOrders       int64
	RestockOrders       int64
	OKOrders            int64
	PartialOrders       int64
	UnavailableOrders   int64
	ItemsFulfilledTotal int64
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EventRepository --dir=. --output=./mocks --outpkg=mocks

// EventRepository определяет интерфейс хранилища событий заказов
type EventRepository interface {
	// Save сохраняет событие. Повторное сохранение с тем же EventID — no-op
	Save(ctx context.Context, event OrderEvent) error
	// Summary возвращает агрегированную статистику
	Summary(ctx context.Context) (Summary, error)
}
