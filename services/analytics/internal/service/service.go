package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shestoi/GoGrocery/services/analytics/internal/repository"
)

// OrderCompletedEvent — событие о завершении обработки заказа из Kafka
type OrderCompletedEvent struct {
	EventID      string
	EventType    string
	EventVersion int
	OccurredAt   time.Time
	OrderID      string
	OrderType    string
	Status       string
	// ItemsFulfilled - количество собранных единиц по каждому отделу
	ItemsFulfilled map[string]int32
}

// EventMetricsRecorder записывает метрики по обработанным событиям
type EventMetricsRecorder interface {
	RecordEventProcessed(status string)
}

// AnalyticsService записывает события заказов и ведёт агрегированную статистику
type AnalyticsService struct {
	logger  *zap.Logger
	repo    repository.EventRepository
	metrics EventMetricsRecorder
}

// NewAnalyticsService создаёт новый экземпляр AnalyticsService.
// metrics опционален (nil - метрики не пишутся)
func NewAnalyticsService(logger *zap.Logger, repo repository.EventRepository, metrics EventMetricsRecorder) *AnalyticsService {
	return &AnalyticsService{
		logger:  logger,
		repo:    repo,
		metrics: metrics,
	}
}

// HandleOrderCompleted записывает событие и логирует текущую статистику.
// Повторная доставка того же event_id не меняет статистику
func (s *AnalyticsService) HandleOrderCompleted(ctx context.Context, event OrderCompletedEvent) error {
	var itemsTotal int32
	for _, count := range event.ItemsFulfilled {
		itemsTotal += count
	}

	err := s.repo.Save(ctx, repository.OrderEvent{
		EventID:    event.EventID,
		OrderID:    event.OrderID,
		OrderType:  event.OrderType,
		Status:     event.Status,
		ItemsTotal: itemsTotal,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.RecordEventProcessed(event.Status)
	}

	summary, err := s.repo.Summary(ctx)
	if err != nil {
		// Запись прошла, статистика не критична
		s.logger.Warn("failed to load summary", zap.Error(err))
		return nil
	}

	s.logger.Info("order recorded",
		zap.String("order_id", event.OrderID),
		zap.String("order_type", event.OrderType),
		zap.String("status", event.Status),
		zap.Int32("items_fulfilled", itemsTotal),
		zap.Int64("total_orders", summary.TotalOrders),
		zap.Int64("grocery_orders", summary.GroceryOrders),
		zap.Int64("restock_orders", summary.RestockOrders),
		zap.Int64("ok_orders", summary.OKOrders),
		zap.Int64("partial_orders", summary.PartialOrders),
		zap.Int64("unavailable_orders", summary.UnavailableOrders))

	return nil
}
