package service

import (
	"context"

	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
	"github.com/shestoi/GoGrocery/services/ordering/internal/event"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AisleClient --dir=. --output=./mocks --outpkg=mocks

// AisleClient определяет интерфейс для работы с backend-ом одного отдела
// Использует доменные типы вместо wire-структур - это делает service независимым от gRPC
type AisleClient interface {
	// FulfillAisle запрашивает сборку (grocery) или пополнение (restock) позиций отдела.
	// Возвращает фактически собранные количества по каждой позиции
	FulfillAisle(ctx context.Context, requestID string, aisle domain.Category, orderType domain.OrderType, items []domain.LineItem) ([]domain.FulfilledItem, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PricingClient --dir=. --output=./mocks --outpkg=mocks

// PricingClient определяет интерфейс для работы с Pricing сервисом
type PricingClient interface {
	// GetPrice возвращает итоговую стоимость по фактически собранным позициям
	GetPrice(ctx context.Context, orderID string, items []domain.FulfilledItem) (float64, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TelemetryPublisher --dir=. --output=./mocks --outpkg=mocks

// TelemetryPublisher определяет интерфейс для публикации телеметрии заказов.
// Контракт fire-and-forget: Publish никогда не блокирует вызывающего,
// не возвращает ошибку и не влияет на обработку заказа
type TelemetryPublisher interface {
	Publish(ev event.TelemetryEvent)
}
