package grpcapi

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	groceryv1 "github.com/shestoi/GoGrocery/api/grocery/v1"
	"github.com/shestoi/GoGrocery/services/aisle/internal/service"
)

// Handler содержит gRPC-обработчики Aisle Service
// Тонкий слой: преобразует wire-типы в простые типы и вызывает service
type Handler struct {
	groceryv1.UnimplementedAisleServiceServer
	aisleService *service.AisleService
	aisle        string
}

// NewHandler создаёт новый gRPC handler для отдела aisle
func NewHandler(aisleService *service.AisleService, aisle string) *Handler {
	return &Handler{
		aisleService: aisleService,
		aisle:        aisle,
	}
}

// FulfillAisle обрабатывает gRPC запрос FulfillAisle
func (h *Handler) FulfillAisle(ctx context.Context, req *groceryv1.FulfillAisleRequest) (*groceryv1.FulfillAisleResponse, error) {
	// Запрос чужого отдела - ошибка конфигурации вызывающего
	if req.Aisle != h.aisle {
		return nil, status.Errorf(codes.InvalidArgument, "aisle %q is not served here (this is %q)", req.Aisle, h.aisle)
	}

	action := service.ActionFetch
	if req.Action == groceryv1.ActionRestock {
		action = service.ActionRestock
	}

	items := make([]service.RequestedItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.RequestedItem{
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	handled, err := h.aisleService.Handle(ctx, action, items)
	if err != nil {
		return nil, err
	}

	resp := &groceryv1.FulfillAisleResponse{
		Items: make([]groceryv1.FulfilledItem, 0, len(handled)),
	}
	for _, item := range handled {
		resp.Items = append(resp.Items, groceryv1.FulfilledItem{
			Name:              item.Name,
			QuantityRequested: item.QuantityRequested,
			QuantityFulfilled: item.QuantityFulfilled,
		})
	}

	return resp, nil
}
