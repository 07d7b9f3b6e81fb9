package groceryv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	AisleService_FulfillAisle_FullMethodName = "/grocery.v1.AisleService/FulfillAisle"
)

// AisleServiceClient — клиентский интерфейс для AisleService
type AisleServiceClient interface {
	// FulfillAisle выполняет сборку (FETCH) или пополнение (RESTOCK) товаров одного отдела
	FulfillAisle(ctx context.Context, in *FulfillAisleRequest, opts ...grpc.CallOption) (*FulfillAisleResponse, error)
}

type aisleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAisleServiceClient создаёт клиент AisleService поверх существующего соединения
func NewAisleServiceClient(cc grpc.ClientConnInterface) AisleServiceClient {
	return &aisleServiceClient{cc}
}

func (c *aisleServiceClient) FulfillAisle(ctx context.Context, in *FulfillAisleRequest, opts ...grpc.CallOption) (*FulfillAisleResponse, error) {
	// Все вызовы контракта идут через наш бинарный кодек
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	out := new(FulfillAisleResponse)
	err := c.cc.Invoke(ctx, AisleService_FulfillAisle_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AisleServiceServer — серверный интерфейс для AisleService
// Реализации должны встраивать UnimplementedAisleServiceServer
type AisleServiceServer interface {
	FulfillAisle(ctx context.Context, in *FulfillAisleRequest) (*FulfillAisleResponse, error)
}

// UnimplementedAisleServiceServer возвращает Unimplemented на все методы
type UnimplementedAisleServiceServer struct{}

func (UnimplementedAisleServiceServer) FulfillAisle(ctx context.Context, in *FulfillAisleRequest) (*FulfillAisleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FulfillAisle not implemented")
}

// RegisterAisleServiceServer регистрирует реализацию сервиса на gRPC сервере
func RegisterAisleServiceServer(s grpc.ServiceRegistrar, srv AisleServiceServer) {
	s.RegisterService(&AisleService_ServiceDesc, srv)
}

func _AisleService_FulfillAisle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FulfillAisleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AisleServiceServer).FulfillAisle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AisleService_FulfillAisle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AisleServiceServer).FulfillAisle(ctx, req.(*FulfillAisleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AisleService_ServiceDesc — описание сервиса для grpc.ServiceRegistrar
var AisleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "grocery.v1.AisleService",
	HandlerType: (*AisleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "FulfillAisle",
			Handler:    _AisleService_FulfillAisle_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/grocery/v1/aisle_grpc.go",
}
