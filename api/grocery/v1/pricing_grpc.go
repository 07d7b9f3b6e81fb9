package groceryv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	PricingService_GetPrice_FullMethodName = "/grocery.v1.PricingService/GetPrice"
)

// PricingServiceClient — клиентский интерфейс для PricingService
type PricingServiceClient interface {
	// GetPrice возвращает итоговую стоимость по фактически собранным товарам
	GetPrice(ctx context.Context, in *GetPriceRequest, opts ...grpc.CallOption) (*GetPriceResponse, error)
}

type pricingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPricingServiceClient создаёт клиент PricingService поверх существующего соединения
func NewPricingServiceClient(cc grpc.ClientConnInterface) PricingServiceClient {
	return &pricingServiceClient{cc}
}

func (c *pricingServiceClient) GetPrice(ctx context.Context, in *GetPriceRequest, opts ...grpc.CallOption) (*GetPriceResponse, error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(GetPriceResponse)
	err := c.cc.Invoke(ctx, PricingService_GetPrice_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PricingServiceServer — серверный интерфейс для PricingService
type PricingServiceServer interface {
	GetPrice(ctx context.Context, in *GetPriceRequest) (*GetPriceResponse, error)
}

// UnimplementedPricingServiceServer возвращает Unimplemented на все методы
type UnimplementedPricingServiceServer struct{}

func (UnimplementedPricingServiceServer) GetPrice(ctx context.Context, in *GetPriceRequest) (*GetPriceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPrice not implemented")
}

// RegisterPricingServiceServer регистрирует реализацию сервиса на gRPC сервере
func RegisterPricingServiceServer(s grpc.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&PricingService_ServiceDesc, srv)
}

func _PricingService_GetPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).GetPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PricingService_GetPrice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).GetPrice(ctx, req.(*GetPriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PricingService_ServiceDesc — описание сервиса для grpc.ServiceRegistrar
var PricingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "grocery.v1.PricingService",
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetPrice",
			Handler:    _PricingService_GetPrice_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/grocery/v1/pricing_grpc.go",
}
