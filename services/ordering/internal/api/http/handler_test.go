package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
	"github.com/shestoi/GoGrocery/services/ordering/internal/service"
	"github.com/shestoi/GoGrocery/services/ordering/internal/service/mocks"
)

// testBackends объединяет моки зависимостей, стоящих за HTTP слоем
type testBackends struct {
	aisles    map[domain.Category]*mocks.AisleClient
	pricing   *mocks.PricingClient
	telemetry *mocks.TelemetryPublisher
}

func newTestRouter(t *testing.T) (http.Handler, testBackends) {
	backends := testBackends{
		aisles: map[domain.Category]*mocks.AisleClient{
			domain.CategoryBread:   mocks.NewAisleClient(t),
			domain.CategoryDairy:   mocks.NewAisleClient(t),
			domain.CategoryMeat:    mocks.NewAisleClient(t),
			domain.CategoryProduce: mocks.NewAisleClient(t),
			domain.CategoryParty:   mocks.NewAisleClient(t),
		},
		pricing:   mocks.NewPricingClient(t),
		telemetry: mocks.NewTelemetryPublisher(t),
	}

	aisles := make(map[domain.Category]service.AisleClient, len(backends.aisles))
	for cat, client := range backends.aisles {
		aisles[cat] = client
	}

	orderService := service.NewOrderService(
		zap.NewNop(),
		aisles,
		backends.pricing,
		backends.telemetry,
		time.Second,
		time.Second,
	)

	handler := NewHandler(zap.NewNop(), orderService)
	return NewRouter(handler, func() bool { return true }, zap.NewNop()), backends
}

func doRequest(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_PostGroceryOrder(t *testing.T) {
	t.Run("valid order returns 200 with full document", func(t *testing.T) {
		// Arrange
		router, backends := newTestRouter(t)

		backends.aisles[domain.CategoryBread].On("FulfillAisle", mock.Anything, "customer-1", domain.CategoryBread, domain.OrderTypeGrocery,
			[]domain.LineItem{{Name: "bagels", Quantity: 5}}).
			Return([]domain.FulfilledItem{{Name: "bagels", QuantityFulfilled: 5}}, nil).Once()
		backends.aisles[domain.CategoryDairy].On("FulfillAisle", mock.Anything, "customer-1", domain.CategoryDairy, domain.OrderTypeGrocery,
			[]domain.LineItem{{Name: "milk", Quantity: 1}}).
			Return([]domain.FulfilledItem{{Name: "milk", QuantityFulfilled: 1}}, nil).Once()
		backends.pricing.On("GetPrice", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(27.95, nil).Once()
		backends.telemetry.On("Publish", mock.Anything).Return().Once()

		body := `{
			"customer_id": "customer-1",
			"order_type": "GROCERY_ORDER",
			"items": {
				"bread": [{"name": "bagels", "quantity": 5}],
				"dairy": [{"name": "milk", "quantity": 1}]
			}
		}`

		// Act
		rec := doRequest(t, router, "/order/grocery", body)

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp struct {
			Status         string  `json:"status"`
			Message        string  `json:"message"`
			OrderID        *string `json:"order_id"`
			ItemsFulfilled map[string][]struct {
				Name              string `json:"name"`
				QuantityFulfilled int32  `json:"quantity_fulfilled"`
			} `json:"items_fulfilled"`
			TotalPrice *float64 `json:"total_price"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		require.Equal(t, "OK", resp.Status)
		require.Equal(t, "Order fulfilled successfully", resp.Message)
		require.NotNil(t, resp.OrderID)
		require.NotEmpty(t, *resp.OrderID)
		require.NotNil(t, resp.TotalPrice)
		require.Equal(t, 27.95, *resp.TotalPrice)

		// Все пять ключей, в том числе отделы без позиций
		require.Len(t, resp.ItemsFulfilled, 5)
		require.Len(t, resp.ItemsFulfilled["bread"], 1)
		require.Equal(t, "bagels", resp.ItemsFulfilled["bread"][0].Name)
		require.Empty(t, resp.ItemsFulfilled["meat"])
		require.Empty(t, resp.ItemsFulfilled["produce"])
		require.Empty(t, resp.ItemsFulfilled["party"])
	})

	t.Run("validation failure returns 400 with null fields", func(t *testing.T) {
		// Arrange
		router, backends := newTestRouter(t)

		body := `{
			"customer_id": "customer-1",
			"order_type": "GROCERY_ORDER",
			"items": {
				"frozen": [{"name": "ice_cream", "quantity": 1}]
			}
		}`

		// Act
		rec := doRequest(t, router, "/order/grocery", body)

		// Assert
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "BAD_REQUEST", resp["status"])
		require.Contains(t, resp["message"], "frozen")
		require.Nil(t, resp["order_id"])
		require.Nil(t, resp["items_fulfilled"])
		require.Nil(t, resp["total_price"])

		for _, client := range backends.aisles {
			client.AssertNotCalled(t, "FulfillAisle")
		}
		backends.pricing.AssertNotCalled(t, "GetPrice")
		backends.telemetry.AssertNotCalled(t, "Publish")
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		// Arrange
		router, _ := newTestRouter(t)

		// Act
		rec := doRequest(t, router, "/order/grocery", `{"customer_id": "customer-1",`)

		// Assert
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "BAD_REQUEST", resp["status"])
		require.Contains(t, resp["message"], "Invalid JSON")
	})

	t.Run("unknown top-level field returns 400", func(t *testing.T) {
		// Arrange
		router, _ := newTestRouter(t)

		body := `{
			"customer_id": "customer-1",
			"order_type": "GROCERY_ORDER",
			"priority": "high",
			"items": {}
		}`

		// Act
		rec := doRequest(t, router, "/order/grocery", body)

		// Assert
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_PostRestockOrder(t *testing.T) {
	t.Run("supplier order is processed as restock", func(t *testing.T) {
		// Arrange
		router, backends := newTestRouter(t)

		backends.aisles[domain.CategoryMeat].On("FulfillAisle", mock.Anything, "supplier-9", domain.CategoryMeat, domain.OrderTypeRestock,
			[]domain.LineItem{{Name: "chicken", Quantity: 30}}).
			Return([]domain.FulfilledItem{{Name: "chicken", QuantityFulfilled: 30}}, nil).Once()
		backends.pricing.On("GetPrice", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(300.0, nil).Once()
		backends.telemetry.On("Publish", mock.Anything).Return().Once()

		body := `{
			"supplier_id": "supplier-9",
			"order_type": "RESTOCK_ORDER",
			"items": {
				"meat": [{"name": "chicken", "quantity": 30}]
			}
		}`

		// Act
		rec := doRequest(t, router, "/order/restock", body)

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "OK", resp["status"])
		require.Equal(t, 300.0, resp["total_price"])
	})

	t.Run("missing supplier id returns 400", func(t *testing.T) {
		// Arrange
		router, _ := newTestRouter(t)

		body := `{
			"order_type": "RESTOCK_ORDER",
			"items": {
				"meat": [{"name": "chicken", "quantity": 30}]
			}
		}`

		// Act
		rec := doRequest(t, router, "/order/restock", body)

		// Assert
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
