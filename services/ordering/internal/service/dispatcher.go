package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
)

// dispatch раздаёт вызовы по отделам: один параллельный вызов на каждый
// непустой отдел, у каждого вызова собственный таймаут. Это join-барьер:
// функция возвращает управление только когда каждый вызов завершился или
// истёк по таймауту, поэтому ответ никогда не строится по неполному набору
// результатов - медленный отдел деградирует до UNAVAILABLE, а не выпадает.
//
// Результаты пишутся каждой горутиной только в собственный слот slice,
// общего изменяемого состояния нет, блокировки не нужны
func (s *OrderService) dispatch(ctx context.Context, order *domain.Order) []domain.AisleOutcome {
	categories := domain.Categories()
	outcomes := make([]domain.AisleOutcome, len(categories))

	var wg sync.WaitGroup
	for i, cat := range categories {
		items := order.Categories[cat]
		if len(items) == 0 {
			// Пустой отдел не диспетчеризуется: вакуумно FULFILLED,
			// чтобы в ответе всегда были все пять ключей
			outcomes[i] = domain.AisleOutcome{Status: domain.AisleFulfilled, Items: []domain.FulfilledItem{}}
			continue
		}

		wg.Add(1)
		go func(slot int, cat domain.Category, items []domain.LineItem) {
			defer wg.Done()

			// Таймаут индивидуальный: истечение одного вызова
			// не отменяет вызовы соседних отделов
			callCtx, cancel := context.WithTimeout(ctx, s.aisleTimeout)
			defer cancel()

			fulfilled, err := s.aisles[cat].FulfillAisle(callCtx, order.OriginID, cat, order.Type, items)
			if err != nil {
				// Ошибка или таймаут одного отдела не фатальны для заказа
				s.logger.Warn("aisle call failed, marking unavailable",
					zap.String("aisle", string(cat)),
					zap.Error(err))
				outcomes[slot] = domain.AisleOutcome{Status: domain.AisleUnavailable, Items: []domain.FulfilledItem{}}
				return
			}

			outcomes[slot] = classifyOutcome(items, fulfilled)
		}(i, cat, items)
	}
	wg.Wait()

	return outcomes
}

// classifyOutcome сравнивает собранное с запрошенным и определяет статус отдела:
//   - FULFILLED: каждая позиция собрана в полном объёме
//   - PARTIAL: хоть что-то собрано, но не всё и не полностью
//   - UNAVAILABLE: не собрано ничего (успешный вызов с нулевой сборкой
//     неотличим для клиента от недоступного отдела)
//
// В Items попадают только позиции с ненулевой сборкой, в порядке запроса
func classifyOutcome(requested []domain.LineItem, fulfilled []domain.FulfilledItem) domain.AisleOutcome {
	byName := make(map[string]int32, len(fulfilled))
	for _, f := range fulfilled {
		byName[f.Name] = f.QuantityFulfilled
	}

	items := make([]domain.FulfilledItem, 0, len(requested))
	full := true
	for _, req := range requested {
		got := byName[req.Name]
		if got > req.Quantity {
			// Больше запрошенного не отдаём
			got = req.Quantity
		}
		if got < req.Quantity {
			full = false
		}
		if got > 0 {
			items = append(items, domain.FulfilledItem{Name: req.Name, QuantityFulfilled: got})
		}
	}

	switch {
	case full:
		return domain.AisleOutcome{Status: domain.AisleFulfilled, Items: items}
	case len(items) > 0:
		return domain.AisleOutcome{Status: domain.AislePartial, Items: items}
	default:
		return domain.AisleOutcome{Status: domain.AisleUnavailable, Items: []domain.FulfilledItem{}}
	}
}
