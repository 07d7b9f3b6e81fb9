package grpcclient

import (
	"context"

	groceryv1 "github.com/shestoi/GoGrocery/api/grocery/v1"
	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
	"github.com/shestoi/GoGrocery/services/ordering/internal/service"
)

// PricingClientAdapter адаптирует gRPC клиент к интерфейсу service.PricingClient
type PricingClientAdapter struct {
	client groceryv1.PricingServiceClient
}

// NewPricingClientAdapter создаёт новый адаптер для Pricing клиента
func NewPricingClientAdapter(client groceryv1.PricingServiceClient) service.PricingClient {
	return &PricingClientAdapter{
		client: client,
	}
}

// GetPrice реализует service.PricingClient интерфейс
// В запрос попадают только собранные количества
func (a *PricingClientAdapter) GetPrice(ctx context.Context, orderID string, items []domain.FulfilledItem) (float64, error) {
	req := &groceryv1.GetPriceRequest{
		OrderID: orderID,
		Items:   make([]groceryv1.Item, 0, len(items)),
	}
	for _, item := range items {
		req.Items = append(req.Items, groceryv1.Item{
			Name:     item.Name,
			Quantity: item.QuantityFulfilled,
		})
	}

	resp, err := a.client.GetPrice(ctx, req)
	if err != nil {
		return 0, err
	}

	return resp.TotalPrice, nil
}
