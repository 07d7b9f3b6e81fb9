package grpcclient

import (
	"context"

	groceryv1 "github.com/shestoi/GoGrocery/api/grocery/v1"
	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
	"github.com/shestoi/GoGrocery/services/ordering/internal/service"
)

// AisleClientAdapter адаптирует gRPC клиент к интерфейсу service.AisleClient
// Это позволяет service слою не зависеть от wire-типов
type AisleClientAdapter struct {
	client groceryv1.AisleServiceClient
}

// NewAisleClientAdapter создаёт новый адаптер для клиента одного отдела
func NewAisleClientAdapter(client groceryv1.AisleServiceClient) service.AisleClient {
	return &AisleClientAdapter{
		client: client,
	}
}

// FulfillAisle реализует service.AisleClient интерфейс
// Преобразует доменные типы в wire-структуры и обратно; ошибки вызова
// возвращаются как есть - в UNAVAILABLE их превращает dispatcher
func (a *AisleClientAdapter) FulfillAisle(
	ctx context.Context,
	requestID string,
	aisle domain.Category,
	orderType domain.OrderType,
	items []domain.LineItem,
) ([]domain.FulfilledItem, error) {
	action := groceryv1.ActionFetch
	if orderType == domain.OrderTypeRestock {
		action = groceryv1.ActionRestock
	}

	req := &groceryv1.FulfillAisleRequest{
		RequestID: requestID,
		Aisle:     string(aisle),
		Action:    action,
		Items:     make([]groceryv1.Item, 0, len(items)),
	}
	for _, item := range items {
		req.Items = append(req.Items, groceryv1.Item{
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	resp, err := a.client.FulfillAisle(ctx, req)
	if err != nil {
		return nil, err
	}

	fulfilled := make([]domain.FulfilledItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		fulfilled = append(fulfilled, domain.FulfilledItem{
			Name:              item.Name,
			QuantityFulfilled: item.QuantityFulfilled,
		})
	}

	return fulfilled, nil
}
