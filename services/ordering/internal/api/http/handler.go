package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
	"github.com/shestoi/GoGrocery/services/ordering/internal/service"
)

// Handler содержит HTTP-обработчики Ordering Service
// Зависит от service слоя, но не знает о деталях реализации (gRPC, Kafka и т.д.)
type Handler struct {
	logger       *zap.Logger
	orderService *service.OrderService
}

// NewHandler создаёт новый HTTP handler
func NewHandler(logger *zap.Logger, orderService *service.OrderService) *Handler {
	return &Handler{
		logger:       logger,
		orderService: orderService,
	}
}

// lineItemDTO представляет позицию заказа в HTTP запросе
type lineItemDTO struct {
	Name     string `json:"name"`
	Quantity int32  `json:"quantity"`
}

// groceryOrderRequest представляет HTTP запрос покупателя
type groceryOrderRequest struct {
	CustomerID string                   `json:"customer_id"`
	OrderType  string                   `json:"order_type"`
	Items      map[string][]lineItemDTO `json:"items"`
}

// restockOrderRequest представляет HTTP запрос поставщика
type restockOrderRequest struct {
	SupplierID string                   `json:"supplier_id"`
	OrderType  string                   `json:"order_type"`
	Items      map[string][]lineItemDTO `json:"items"`
}

// fulfilledItemDTO представляет собранную позицию в HTTP ответе
type fulfilledItemDTO struct {
	Name              string `json:"name"`
	QuantityFulfilled int32  `json:"quantity_fulfilled"`
}

// orderResponse представляет HTTP ответ на любой заказ.
// При BAD_REQUEST order_id, items_fulfilled и total_price равны null
type orderResponse struct {
	Status         string                        `json:"status"`
	Message        string                        `json:"message"`
	OrderID        *string                       `json:"order_id"`
	ItemsFulfilled map[string][]fulfilledItemDTO `json:"items_fulfilled"`
	TotalPrice     *float64                      `json:"total_price"`
}

// PostGroceryOrder обрабатывает POST /order/grocery - заказ покупателя
func (h *Handler) PostGroceryOrder(w http.ResponseWriter, r *http.Request) {
	var reqBody groceryOrderRequest
	if !h.decode(w, r, &reqBody) {
		return
	}

	h.process(w, r, service.ProcessOrderInput{
		OriginID:  reqBody.CustomerID,
		OrderType: reqBody.OrderType,
		Items:     toServiceItems(reqBody.Items),
	})
}

// PostRestockOrder обрабатывает POST /order/restock - заказ поставщика
func (h *Handler) PostRestockOrder(w http.ResponseWriter, r *http.Request) {
	var reqBody restockOrderRequest
	if !h.decode(w, r, &reqBody) {
		return
	}

	h.process(w, r, service.ProcessOrderInput{
		OriginID:  reqBody.SupplierID,
		OrderType: reqBody.OrderType,
		Items:     toServiceItems(reqBody.Items),
	})
}

// decode разбирает JSON тело запроса.
// Неизвестные поля верхнего уровня отклоняются; неизвестные категории
// внутри items отклоняет валидатор
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.logger.Info("rejecting malformed order request", zap.Error(err))
		h.writeResponse(w, http.StatusBadRequest, orderResponse{
			Status:  string(domain.StatusBadRequest),
			Message: fmt.Sprintf("Invalid JSON: %v", err),
		})
		return false
	}
	return true
}

// process запускает оркестрацию и сериализует результат.
// Структурно валидный заказ всегда отвечает 200 с полным документом,
// даже при SERVICE_UNAVAILABLE; 400 возвращается только на невалидный вход
func (h *Handler) process(w http.ResponseWriter, r *http.Request, input service.ProcessOrderInput) {
	result := h.orderService.ProcessOrder(r.Context(), input)

	resp := orderResponse{
		Status:     string(result.Status),
		Message:    result.Message,
		OrderID:    result.OrderID,
		TotalPrice: result.TotalPrice,
	}

	if result.Status == domain.StatusBadRequest {
		h.writeResponse(w, http.StatusBadRequest, resp)
		return
	}

	// items_fulfilled всегда содержит все пять ключей
	resp.ItemsFulfilled = make(map[string][]fulfilledItemDTO, len(result.ItemsFulfilled))
	for cat, items := range result.ItemsFulfilled {
		dtoItems := make([]fulfilledItemDTO, 0, len(items))
		for _, item := range items {
			dtoItems = append(dtoItems, fulfilledItemDTO{
				Name:              item.Name,
				QuantityFulfilled: item.QuantityFulfilled,
			})
		}
		resp.ItemsFulfilled[string(cat)] = dtoItems
	}

	h.writeResponse(w, http.StatusOK, resp)
}

func (h *Handler) writeResponse(w http.ResponseWriter, code int, resp orderResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func toServiceItems(items map[string][]lineItemDTO) map[string][]domain.LineItem {
	result := make(map[string][]domain.LineItem, len(items))
	for key, list := range items {
		converted := make([]domain.LineItem, 0, len(list))
		for _, item := range list {
			converted = append(converted, domain.LineItem{
				Name:     item.Name,
				Quantity: item.Quantity,
			})
		}
		result[key] = converted
	}
	return result
}
