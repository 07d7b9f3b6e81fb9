package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestConsumer(t *testing.T) *OrderCompletedConsumer {
	// Reader не подключается к брокеру до первого чтения,
	// для тестов парсинга достаточно собрать consumer
	consumer := NewOrderCompletedConsumer(zap.NewNop(), []string{"localhost:19092"}, "analytics", "order.telemetry", nil)
	t.Cleanup(func() { _ = consumer.Close() })
	return consumer
}

func TestParseOrderCompletedEvent(t *testing.T) {
	consumer := newTestConsumer(t)

	t.Run("full payload", func(t *testing.T) {
		raw := `{
			"event_id": "event-1",
			"event_type": "order.completed",
			"event_version": 1,
			"occurred_at": "2024-05-10T12:00:00Z",
			"order_id": "order-1",
			"order_type": "GROCERY_ORDER",
			"status": "PARTIAL",
			"items_fulfilled": {
				"bread": [{"name": "bagels", "quantity_fulfilled": 5}],
				"dairy": [
					{"name": "milk", "quantity_fulfilled": 1},
					{"name": "cheese", "quantity_fulfilled": 2}
				],
				"meat": []
			}
		}`
		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(raw), &payload))

		event, err := consumer.parseOrderCompletedEvent(payload)

		require.NoError(t, err)
		require.Equal(t, "event-1", event.EventID)
		require.Equal(t, "order.completed", event.EventType)
		require.Equal(t, 1, event.EventVersion)
		require.Equal(t, time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC), event.OccurredAt)
		require.Equal(t, "order-1", event.OrderID)
		require.Equal(t, "GROCERY_ORDER", event.OrderType)
		require.Equal(t, "PARTIAL", event.Status)
		require.Equal(t, int32(5), event.ItemsFulfilled["bread"])
		require.Equal(t, int32(3), event.ItemsFulfilled["dairy"])
		require.Equal(t, int32(0), event.ItemsFulfilled["meat"])
	})

	t.Run("missing event_id is an error", func(t *testing.T) {
		payload := map[string]interface{}{
			"order_id": "order-1",
		}

		_, err := consumer.parseOrderCompletedEvent(payload)

		require.Error(t, err)
		require.Contains(t, err.Error(), "event_id")
	})

	t.Run("missing order_id is an error", func(t *testing.T) {
		payload := map[string]interface{}{
			"event_id": "event-1",
		}

		_, err := consumer.parseOrderCompletedEvent(payload)

		require.Error(t, err)
		require.Contains(t, err.Error(), "order_id")
	})
}
