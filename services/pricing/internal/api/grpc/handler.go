package grpcapi

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	groceryv1 "github.com/shestoi/GoGrocery/api/grocery/v1"
	"github.com/shestoi/GoGrocery/services/pricing/internal/service"
)

// Handler содержит gRPC-обработчики Pricing Service
// Тонкий слой: преобразует wire-типы в простые типы и вызывает service
type Handler struct {
	groceryv1.UnimplementedPricingServiceServer
	pricingService *service.PricingService
}

// NewHandler создаёт новый gRPC handler
func NewHandler(pricingService *service.PricingService) *Handler {
	return &Handler{
		pricingService: pricingService,
	}
}

// GetPrice обрабатывает gRPC запрос GetPrice
func (h *Handler) GetPrice(ctx context.Context, req *groceryv1.GetPriceRequest) (*groceryv1.GetPriceResponse, error) {
	items := make([]service.PricedItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.PricedItem{
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	total, err := h.pricingService.GetPrice(ctx, req.OrderID, items)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	return &groceryv1.GetPriceResponse{
		TotalPrice: total,
	}, nil
}
