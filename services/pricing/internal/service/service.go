package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// PricedItem — позиция для расчёта стоимости.
// Quantity — фактически собранное количество
type PricedItem struct {
	Name     string
	Quantity int32
}

// PricingService считает итоговую стоимость заказа по прайс-листу
type PricingService struct {
	logger *zap.Logger
}

// NewPricingService создаёт новый экземпляр PricingService
func NewPricingService(logger *zap.Logger) *PricingService {
	return &PricingService{
		logger: logger,
	}
}

// GetPrice возвращает сумму по всем позициям.
// Товар вне прайс-листа - ошибка вызывающего: ordering валидирует словарь
// до расчёта, поэтому такой запрос означает рассинхронизацию контрактов
func (s *PricingService) GetPrice(ctx context.Context, orderID string, items []PricedItem) (float64, error) {
	var total float64
	for _, item := range items {
		price, ok := prices[item.Name]
		if !ok {
			return 0, fmt.Errorf("unknown item %q", item.Name)
		}
		total += price * float64(item.Quantity)
	}

	s.logger.Info("order priced",
		zap.String("order_id", orderID),
		zap.Int("items", len(items)),
		zap.Float64("total", total))

	return total, nil
}
