package grpc

import (
	"context"

	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/ports"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type StatusSetter interface {
	SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
}

// RegisterPriceService registers reflection and publishes the price service
// health under both its own name and the empty (server-wide) name.
func RegisterPriceService(s *grpc.Server, hs StatusSetter, health ports.HealthPort, service string) {
	reflection.Register(s)

	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ok, _ := health.Check(context.Background(), service); ok {
		status = healthpb.HealthCheckResponse_SERVING
	}
	hs.SetServingStatus(service, status)
	hs.SetServingStatus("", status)
}
