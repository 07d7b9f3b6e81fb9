package service

import (
	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
)

// aggregate — чистая функция над пятью результатами диспетчеризации.
// Строит items_fulfilled (всегда пять ключей, в том числе пустых) и выводит
// итоговый статус заказа:
//   - OK: каждый непустой отдел FULFILLED
//   - PARTIAL: хотя бы один отдел PARTIAL или UNAVAILABLE, но что-то собрано
//   - SERVICE_UNAVAILABLE: все непустые отделы UNAVAILABLE (запрос валиден,
//     но не собрано ничего)
//
// Порядок outcomes соответствует domain.Categories()
func aggregate(order *domain.Order, outcomes []domain.AisleOutcome) (domain.OrderStatus, map[domain.Category][]domain.FulfilledItem) {
	itemsFulfilled := make(map[domain.Category][]domain.FulfilledItem, len(outcomes))

	dispatched := 0
	unavailable := 0
	degraded := 0
	for i, cat := range domain.Categories() {
		outcome := outcomes[i]
		itemsFulfilled[cat] = outcome.Items

		if len(order.Categories[cat]) == 0 {
			// Вакуумный результат не влияет на статус заказа
			continue
		}
		dispatched++
		switch outcome.Status {
		case domain.AisleUnavailable:
			unavailable++
			degraded++
		case domain.AislePartial:
			degraded++
		}
	}

	switch {
	case unavailable == dispatched:
		return domain.StatusServiceUnavailable, itemsFulfilled
	case degraded == 0:
		return domain.StatusOK, itemsFulfilled
	default:
		// unavailable < dispatched, значит хотя бы один отдел что-то собрал
		return domain.StatusPartial, itemsFulfilled
	}
}
