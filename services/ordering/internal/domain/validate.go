package domain

import "fmt"

// ValidationError описывает первое нарушенное ограничение входного заказа.
// Валидация работает по принципу fail-fast: возвращается первая найденная
// проблема, а не полный список
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewOrder валидирует входные данные и строит нормализованный Order.
// Проверки:
//   - order_type один из двух известных типов
//   - все ключи items — известные отделы (отсутствующие нормализуются в пустые списки)
//   - каждая позиция входит в словарь своего отдела
//   - каждое количество строго положительное
//   - хотя бы один отдел непустой
//
// Никаких вызовов внешних сервисов здесь нет и быть не должно
func NewOrder(originID string, orderType string, items map[string][]LineItem) (*Order, *ValidationError) {
	if originID == "" {
		return nil, &ValidationError{Field: "origin_id", Message: "identifier is required"}
	}

	ot := OrderType(orderType)
	if ot != OrderTypeGrocery && ot != OrderTypeRestock {
		return nil, &ValidationError{
			Field:   "order_type",
			Message: fmt.Sprintf("unknown order type %q (must be %s or %s)", orderType, OrderTypeGrocery, OrderTypeRestock),
		}
	}

	for key := range items {
		if !KnownCategory(key) {
			return nil, &ValidationError{
				Field:   "items",
				Message: fmt.Sprintf("unknown category %q", key),
			}
		}
	}

	// Нормализация: в Order всегда ровно пять ключей
	categories := make(map[Category][]LineItem, len(catalog))
	total := 0
	for _, cat := range Categories() {
		list := items[string(cat)]
		for _, item := range list {
			if !KnownItem(cat, item.Name) {
				return nil, &ValidationError{
					Field:   string(cat),
					Message: fmt.Sprintf("unknown item %q", item.Name),
				}
			}
			if item.Quantity < 1 {
				return nil, &ValidationError{
					Field:   string(cat),
					Message: fmt.Sprintf("quantity for %q must be a positive integer", item.Name),
				}
			}
		}
		normalized := make([]LineItem, len(list))
		copy(normalized, list)
		categories[cat] = normalized
		total += len(list)
	}

	if total == 0 {
		return nil, &ValidationError{Field: "items", Message: "order must contain at least one item"}
	}

	return &Order{
		OriginID:   originID,
		Type:       ot,
		Categories: categories,
	}, nil
}
