package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shestoi/GoGrocery/services/aisle/internal/repository"
)

// Action — операция над полками отдела
type Action int

const (
	// ActionFetch — сборка товаров для заказа покупателя
	ActionFetch Action = iota
	// ActionRestock — пополнение полок поставщиком
	ActionRestock
)

// RequestedItem — запрошенная позиция
type RequestedItem struct {
	Name     string
	Quantity int32
}

// HandledItem — позиция после обработки отделом
type HandledItem struct {
	Name              string
	QuantityRequested int32
	QuantityFulfilled int32
}

// AisleService содержит логику работы одного отдела:
// сборка с полок с учётом остатков и пополнение запасов
type AisleService struct {
	logger       *zap.Logger
	repo         repository.StockRepository
	aisle        string
	perItemDelay time.Duration
}

// NewAisleService создаёт новый экземпляр AisleService
func NewAisleService(logger *zap.Logger, repo repository.StockRepository, aisle string, perItemDelay time.Duration) *AisleService {
	return &AisleService{
		logger:       logger,
		repo:         repo,
		aisle:        aisle,
		perItemDelay: perItemDelay,
	}
}

// Handle обрабатывает один запрос к отделу.
// FETCH снимает с полок не больше, чем есть в наличии; RESTOCK пополняет
// полки и всегда выполняется в полном объёме. Пустой список позиций -
// корректный no-op.
// При отмене контекста посреди списка уже снятый товар на полки не
// возвращается: отдел не откатывает частично выполненную работу, весь
// запрос при этом считается у вызывающего недоступным
func (s *AisleService) Handle(ctx context.Context, action Action, items []RequestedItem) ([]HandledItem, error) {
	handled := make([]HandledItem, 0, len(items))

	for _, item := range items {
		// Имитация времени работы с одной позицией
		if s.perItemDelay > 0 {
			select {
			case <-time.After(s.perItemDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		var fulfilled int32
		var err error
		switch action {
		case ActionRestock:
			_, err = s.repo.Add(ctx, item.Name, item.Quantity)
			fulfilled = item.Quantity
		default:
			fulfilled, err = s.repo.Take(ctx, item.Name, item.Quantity)
		}
		if err != nil {
			return nil, err
		}

		handled = append(handled, HandledItem{
			Name:              item.Name,
			QuantityRequested: item.Quantity,
			QuantityFulfilled: fulfilled,
		})
	}

	s.logger.Info("aisle request handled",
		zap.String("aisle", s.aisle),
		zap.Int("items", len(items)),
		zap.Bool("restock", action == ActionRestock))

	return handled, nil
}
