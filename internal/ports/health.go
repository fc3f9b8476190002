package ports

import "context"

// HealthPort backs the liveness endpoints (HTTP /health and gRPC health).
type HealthPort interface {
	Check(ctx context.Context, service string) (healthy bool, msg string)
}
