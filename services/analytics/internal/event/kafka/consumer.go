package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shestoi/GoGrocery/services/analytics/internal/service"
)

// ParseError описывает ошибку разбора события телеметрии
type ParseError struct {
	Field   string
	Message string
}

func (e *ParseError) Error() string {
	return e.Field + ": " + e.Message
}

// OrderCompletedConsumer обрабатывает события завершения заказов из Kafka
type OrderCompletedConsumer struct {
	logger  *zap.Logger
	reader  *kafka.Reader
	service *service.AnalyticsService
}

// NewOrderCompletedConsumer создаёт новый consumer для телеметрии заказов
func NewOrderCompletedConsumer(
	logger *zap.Logger,
	brokers []string,
	groupID, topic string,
	svc *service.AnalyticsService,
) *OrderCompletedConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})

	return &OrderCompletedConsumer{
		logger:  logger,
		reader:  reader,
		service: svc,
	}
}

// Start запускает consumer и начинает обработку сообщений
// Использует at-least-once семантику: FetchMessage + CommitMessages после обработки.
// Телеметрия best-effort: необрабатываемые сообщения пропускаются, без retry и DLQ
func (c *OrderCompletedConsumer) Start(ctx context.Context) error {
	c.logger.Info("starting kafka consumer",
		zap.String("topic", c.reader.Config().Topic),
		zap.String("group_id", c.reader.Config().GroupID),
	)

	for {
		// FetchMessage вместо ReadMessage для ручного контроля commit
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			// Если контекст отменён, выходим
			if ctx.Err() != nil {
				c.logger.Info("consumer context cancelled, stopping")
				return nil
			}
			c.logger.Error("failed to fetch message from kafka",
				zap.Error(err),
			)
			// Продолжаем обработку, не паникуем
			continue
		}

		c.processMessage(ctx, m)

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			c.logger.Error("failed to commit message offset",
				zap.Error(err),
				zap.String("topic", m.Topic),
				zap.Int("partition", m.Partition),
				zap.Int64("offset", m.Offset),
			)
		}
	}
}

// processMessage обрабатывает одно сообщение из Kafka
// Сообщение пропускается при любой ошибке: статистика не стоит остановки потока
func (c *OrderCompletedConsumer) processMessage(ctx context.Context, m kafka.Message) {
	var payload map[string]interface{}
	if err := json.Unmarshal(m.Value, &payload); err != nil {
		c.logger.Error("failed to unmarshal kafka message, skipping",
			zap.Error(err),
			zap.String("topic", m.Topic),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
		)
		return
	}

	event, err := c.parseOrderCompletedEvent(payload)
	if err != nil {
		c.logger.Error("failed to parse order completed event, skipping",
			zap.Error(err),
			zap.String("topic", m.Topic),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
		)
		return
	}

	c.logger.Debug("received order completed event",
		zap.String("event_id", event.EventID),
		zap.String("order_id", event.OrderID),
		zap.Int("partition", m.Partition),
		zap.Int64("offset", m.Offset),
	)

	if err := c.service.HandleOrderCompleted(ctx, event); err != nil {
		c.logger.Error("failed to handle order completed event, skipping",
			zap.Error(err),
			zap.String("order_id", event.OrderID),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
		)
	}
}

// parseOrderCompletedEvent преобразует payload в OrderCompletedEvent
func (c *OrderCompletedConsumer) parseOrderCompletedEvent(payload map[string]interface{}) (service.OrderCompletedEvent, error) {
	event := service.OrderCompletedEvent{}

	if v, ok := payload["event_id"].(string); ok {
		event.EventID = v
	} else {
		return event, &ParseError{Field: "event_id", Message: "event_id is required"}
	}
	if v, ok := payload["event_type"].(string); ok {
		event.EventType = v
	}
	if v, ok := payload["event_version"].(float64); ok {
		event.EventVersion = int(v)
	}
	if v, ok := payload["occurred_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			event.OccurredAt = t
		}
	}
	if v, ok := payload["order_id"].(string); ok {
		event.OrderID = v
	} else {
		return event, &ParseError{Field: "order_id", Message: "order_id is required"}
	}
	if v, ok := payload["order_type"].(string); ok {
		event.OrderType = v
	}
	if v, ok := payload["status"].(string); ok {
		event.Status = v
	}

	// items_fulfilled: map отдел -> список позиций, считаем собранные единицы
	event.ItemsFulfilled = make(map[string]int32)
	if aisles, ok := payload["items_fulfilled"].(map[string]interface{}); ok {
		for aisle, raw := range aisles {
			items, ok := raw.([]interface{})
			if !ok {
				continue
			}
			var total int32
			for _, rawItem := range items {
				item, ok := rawItem.(map[string]interface{})
				if !ok {
					continue
				}
				if qty, ok := item["quantity_fulfilled"].(float64); ok {
					total += int32(qty)
				}
			}
			event.ItemsFulfilled[aisle] = total
		}
	}

	return event, nil
}

// Close закрывает Kafka reader
func (c *OrderCompletedConsumer) Close() error {
	c.logger.Info("closing kafka consumer")
	return c.reader.Close()
}
