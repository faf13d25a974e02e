package rpc

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	bookingv1 "github.com/Leganyst/seminar-hall-booking/internal/api/booking/v1"
	directoryv1 "github.com/Leganyst/seminar-hall-booking/internal/api/directory/v1"
)

// NewServer собирает gRPC-сервер со всеми сервисами и health-check.
// Возвращённый health.Server нужно перевести в NOT_SERVING перед остановкой.
func NewServer(log *zap.Logger, bookings bookingv1.BookingServiceServer, directory directoryv1.DirectoryServiceServer) (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(LoggingInterceptor(log)),
	)

	bookingv1.RegisterBookingServiceServer(srv, bookings)
	directoryv1.RegisterDirectoryServiceServer(srv, directory)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus(bookingv1.BookingService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(directoryv1.DirectoryService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, hs
}
