package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
	"github.com/shestoi/GoGrocery/services/ordering/internal/event"
)

// TelemetrySink реализует event.Sink используя Kafka
type TelemetrySink struct {
	logger *zap.Logger
	writer *kafka.Writer
	topic  string
}

// NewTelemetrySink создаёт новый Kafka sink для телеметрии заказов
func NewTelemetrySink(logger *zap.Logger, brokers []string, topic string) *TelemetrySink {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &TelemetrySink{
		logger: logger,
		writer: writer,
		topic:  topic,
	}
}

// Close закрывает Kafka writer
func (s *TelemetrySink) Close() error {
	return s.writer.Close()
}

// fulfilledItemPayload — позиция items_fulfilled в JSON payload события
type fulfilledItemPayload struct {
	Name              string `json:"name"`
	QuantityFulfilled int32  `json:"quantity_fulfilled"`
}

// Emit публикует событие о завершённом заказе в Kafka
func (s *TelemetrySink) Emit(ctx context.Context, ev event.TelemetryEvent) error {
	// Формируем items_fulfilled с пятью ключами, как в ответе клиенту
	itemsFulfilled := make(map[string][]fulfilledItemPayload, len(ev.ItemsFulfilled))
	for _, cat := range domain.Categories() {
		items := make([]fulfilledItemPayload, 0, len(ev.ItemsFulfilled[cat]))
		for _, item := range ev.ItemsFulfilled[cat] {
			items = append(items, fulfilledItemPayload{
				Name:              item.Name,
				QuantityFulfilled: item.QuantityFulfilled,
			})
		}
		itemsFulfilled[string(cat)] = items
	}

	// Формируем JSON payload события
	payload := map[string]interface{}{
		"event_id":        uuid.New().String(),
		"event_type":      "order.completed",
		"event_version":   1,
		"occurred_at":     ev.EmittedAt.Format(time.RFC3339),
		"order_id":        ev.OrderID,
		"order_type":      string(ev.OrderType),
		"status":          string(ev.Status),
		"items_fulfilled": itemsFulfilled,
	}

	valueBytes, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to marshal telemetry event",
			zap.Error(err),
			zap.String("order_id", ev.OrderID))
		return err
	}

	message := kafka.Message{
		Key:   []byte(ev.OrderID),
		Value: valueBytes,
	}

	if err := s.writer.WriteMessages(ctx, message); err != nil {
		s.logger.Error("failed to publish telemetry event",
			zap.Error(err),
			zap.String("topic", s.topic),
			zap.String("order_id", ev.OrderID))
		return err
	}

	s.logger.Debug("telemetry event published",
		zap.String("topic", s.topic),
		zap.String("order_id", ev.OrderID))

	return nil
}
