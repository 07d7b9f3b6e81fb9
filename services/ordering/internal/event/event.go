// Package event отвечает за телеметрию заказов: событие-снимок результата,
// неблокирующая публикация с ограниченной очередью и sink-интерфейс
// для конкретного транспорта (Kafka)
package event

import (
	"context"
	"time"

	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
)

// TelemetryEvent — снимок результата заказа для аналитики.
// Создаётся один раз после агрегации и больше не мутируется;
// его доставка асинхронна и может пережить цикл запрос-ответ
type TelemetryEvent struct {
	OrderID        string
	OrderType      domain.OrderType
	Status         domain.OrderStatus
	ItemsFulfilled map[domain.Category][]domain.FulfilledItem
	EmittedAt      time.Time
}

// Sink доставляет событие во внешний канал (синхронно, с ошибкой).
// AsyncPublisher прячет его за неблокирующим Publish
type Sink interface {
	Emit(ctx context.Context, event TelemetryEvent) error
}
