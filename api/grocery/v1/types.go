// Package groceryv1 описывает внутренний RPC-контракт платформы:
// сообщения и клиент/сервер stubs для AisleService (наличие и сборка товаров
// одного отдела) и PricingService (расчёт стоимости собранных товаров).
// Контракт написан вручную и использует бинарный кодек поверх gRPC (см. codec.go),
// поэтому не требует кодогенерации.
package groceryv1

// ActionType определяет тип операции над отделом
type ActionType int32

const (
	// ActionFetch — сборка товаров с полок для заказа покупателя
	ActionFetch ActionType = 0
	// ActionRestock — пополнение полок товарами поставщика
	ActionRestock ActionType = 1
)

// Item представляет запрошенный товар
type Item struct {
	Name     string
	Quantity int32
}

// FulfilledItem представляет товар после обработки отделом:
// сколько запрашивали и сколько реально удалось собрать
type FulfilledItem struct {
	Name              string
	QuantityRequested int32
	QuantityFulfilled int32
}

// FulfillAisleRequest — запрос к одному отделу на сборку или пополнение.
// RequestID — идентификатор инициатора (customer_id/supplier_id), нужен
// для сквозной корреляции в логах
type FulfillAisleRequest struct {
	RequestID string
	Aisle     string
	Action    ActionType
	Items     []Item
}

// FulfillAisleResponse — результат обработки запроса отделом
type FulfillAisleResponse struct {
	Items []FulfilledItem
}

// GetPriceRequest — запрос стоимости по фактически собранным товарам.
// Quantity каждой позиции — собранное количество, а не запрошенное
type GetPriceRequest struct {
	OrderID string
	Items   []Item
}

// GetPriceResponse — итоговая стоимость заказа
type GetPriceResponse struct {
	TotalPrice float64
}
