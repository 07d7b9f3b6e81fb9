package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
	"github.com/shestoi/GoGrocery/services/ordering/internal/event"
)

// Сообщения итогового ответа по статусам
const (
	msgFulfilled          = "Order fulfilled successfully"
	msgPartial            = "Order partially fulfilled"
	msgServiceUnavailable = "No aisle could fulfill the order"
	msgPricingDegraded    = ", total price temporarily unavailable"
)

// OrderService содержит всю логику оркестрации заказа:
// валидация -> параллельная диспетчеризация по отделам -> агрегация ->
// расчёт стоимости -> телеметрия -> сборка ответа.
// Зависит от интерфейсов, а не от конкретных gRPC клиентов -
// это позволяет легко подменять их в тестах
type OrderService struct {
	logger         *zap.Logger
	aisles         map[domain.Category]AisleClient
	pricing        PricingClient
	telemetry      TelemetryPublisher
	aisleTimeout   time.Duration
	pricingTimeout time.Duration
}

// NewOrderService создаёт новый экземпляр OrderService.
// aisles должен содержать клиент для каждого из пяти отделов
func NewOrderService(
	logger *zap.Logger,
	aisles map[domain.Category]AisleClient,
	pricing PricingClient,
	telemetry TelemetryPublisher,
	aisleTimeout time.Duration,
	pricingTimeout time.Duration,
) *OrderService {
	return &OrderService{
		logger:         logger,
		aisles:         aisles,
		pricing:        pricing,
		telemetry:      telemetry,
		aisleTimeout:   aisleTimeout,
		pricingTimeout: pricingTimeout,
	}
}

// ProcessOrderInput содержит входные данные заказа до валидации.
// Items приходит с ключами-категориями как их прислал клиент
type ProcessOrderInput struct {
	OriginID  string
	OrderType string
	Items     map[string][]domain.LineItem
}

// ProcessOrderOutput содержит итоговый результат обработки заказа.
// При BAD_REQUEST OrderID, ItemsFulfilled и TotalPrice равны nil
type ProcessOrderOutput struct {
	Status         domain.OrderStatus
	Message        string
	OrderID        *string
	ItemsFulfilled map[domain.Category][]domain.FulfilledItem
	TotalPrice     *float64
}

// ProcessOrder обрабатывает один заказ от начала до конца.
//
// Невалидный заказ отклоняется до каких-либо внешних вызовов: ни отделы,
// ни pricing, ни телеметрия для него не вызываются. Для валидного заказа
// сбой любого отдела деградирует только его результат, сбой pricing
// обнуляет только total_price, а телеметрия никогда не влияет на ответ
func (s *OrderService) ProcessOrder(ctx context.Context, input ProcessOrderInput) ProcessOrderOutput {
	order, verr := domain.NewOrder(input.OriginID, input.OrderType, input.Items)
	if verr != nil {
		s.logger.Info("order rejected",
			zap.String("origin_id", input.OriginID),
			zap.String("reason", verr.Error()))
		return ProcessOrderOutput{
			Status:  domain.StatusBadRequest,
			Message: verr.Error(),
		}
	}

	s.logger.Info("processing order",
		zap.String("origin_id", order.OriginID),
		zap.String("order_type", string(order.Type)))

	// Параллельная диспетчеризация с join-барьером
	outcomes := s.dispatch(ctx, order)

	status, itemsFulfilled := aggregate(order, outcomes)

	// ID выдаётся только структурно валидному заказу и только после того,
	// как полный набор результатов существует
	orderID := uuid.New().String()

	totalPrice, priced := s.priceOrder(ctx, orderID, itemsFulfilled, status)

	message := statusMessage(status)
	if status != domain.StatusServiceUnavailable && !priced {
		message += msgPricingDegraded
	}

	// Телеметрия вне критического пути: Publish не блокирует и не падает
	s.telemetry.Publish(event.TelemetryEvent{
		OrderID:        orderID,
		OrderType:      order.Type,
		Status:         status,
		ItemsFulfilled: itemsFulfilled,
		EmittedAt:      time.Now().UTC(),
	})

	s.logger.Info("order processed",
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
		zap.Bool("priced", priced))

	return ProcessOrderOutput{
		Status:         status,
		Message:        message,
		OrderID:        &orderID,
		ItemsFulfilled: itemsFulfilled,
		TotalPrice:     totalPrice,
	}
}

// priceOrder вызывает Pricing сервис по фактически собранным позициям.
// Ценится только собранное: позиции с нулевой сборкой в запрос не попадают.
// Сбой pricing не отменяет заказ - total_price становится nil,
// статус заказа не меняется
func (s *OrderService) priceOrder(
	ctx context.Context,
	orderID string,
	itemsFulfilled map[domain.Category][]domain.FulfilledItem,
	status domain.OrderStatus,
) (*float64, bool) {
	if status == domain.StatusServiceUnavailable {
		// Нечего ценить - ни одна позиция не собрана
		return nil, false
	}

	flat := make([]domain.FulfilledItem, 0)
	for _, cat := range domain.Categories() {
		flat = append(flat, itemsFulfilled[cat]...)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.pricingTimeout)
	defer cancel()

	total, err := s.pricing.GetPrice(callCtx, orderID, flat)
	if err != nil {
		s.logger.Warn("pricing call failed, responding without total price",
			zap.String("order_id", orderID),
			zap.Error(err))
		return nil, false
	}

	return &total, true
}

func statusMessage(status domain.OrderStatus) string {
	switch status {
	case domain.StatusOK:
		return msgFulfilled
	case domain.StatusPartial:
		return msgPartial
	case domain.StatusServiceUnavailable:
		return msgServiceUnavailable
	default:
		return string(status)
	}
}
