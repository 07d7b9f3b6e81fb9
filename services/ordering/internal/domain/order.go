package domain

// Category — один из пяти фиксированных отделов магазина
type Category string

const (
	CategoryBread   Category = "bread"
	CategoryDairy   Category = "dairy"
	CategoryMeat    Category = "meat"
	CategoryProduce Category = "produce"
	CategoryParty   Category = "party"
)

// Categories возвращает все отделы в каноническом порядке.
// Порядок важен: диспетчеризация, агрегация и сериализация ответа
// обходят отделы одинаково
func Categories() []Category {
	return []Category{CategoryBread, CategoryDairy, CategoryMeat, CategoryProduce, CategoryParty}
}

// OrderType — тип заказа
type OrderType string

const (
	// OrderTypeGrocery — заказ покупателя на доставку продуктов
	OrderTypeGrocery OrderType = "GROCERY_ORDER"
	// OrderTypeRestock — заказ поставщика на пополнение полок
	OrderTypeRestock OrderType = "RESTOCK_ORDER"
)

// LineItem — одна позиция заказа
type LineItem struct {
	Name     string
	Quantity int32
}

// Order — нормализованный заказ после валидации.
// Инвариант: Categories содержит ровно пять известных ключей,
// хотя бы один из списков непустой, все позиции прошли проверку словаря
type Order struct {
	OriginID   string
	Type       OrderType
	Categories map[Category][]LineItem
}

// AisleStatus — результат обработки одного отдела
type AisleStatus string

const (
	// AisleFulfilled — все позиции собраны в полном объёме
	AisleFulfilled AisleStatus = "FULFILLED"
	// AislePartial — часть позиций собрана не полностью или пропущена
	AislePartial AisleStatus = "PARTIAL"
	// AisleUnavailable — отдел недоступен (ошибка вызова или таймаут), ничего не собрано
	AisleUnavailable AisleStatus = "UNAVAILABLE"
)

// FulfilledItem — фактически собранная позиция
type FulfilledItem struct {
	Name              string
	QuantityFulfilled int32
}

// AisleOutcome — итог диспетчеризации одного отдела.
// Для отдела с пустым списком позиций outcome вакуумно FULFILLED с пустым Items
type AisleOutcome struct {
	Status AisleStatus
	Items  []FulfilledItem
}

// OrderStatus — итоговый статус всего заказа
type OrderStatus string

const (
	StatusOK                 OrderStatus = "OK"
	StatusPartial            OrderStatus = "PARTIAL"
	StatusBadRequest         OrderStatus = "BAD_REQUEST"
	StatusServiceUnavailable OrderStatus = "SERVICE_UNAVAILABLE"
)
