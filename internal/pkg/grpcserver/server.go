package grpcserver

import (
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server is the optional gRPC listener. It only carries the health and
// reflection services; prices are served over HTTP.
type Server struct {
	addr   string
	lis    net.Listener
	Server *grpc.Server
	Health *health.Server
	logger zerolog.Logger
}

func New(addr string, logger zerolog.Logger) *Server {
	s := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	return &Server{
		addr:   addr,
		Server: s,
		Health: hs,
		logger: logger.With().Str("server", "grpc").Logger(),
	}
}

func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

func (s *Server) Serve(lis net.Listener) error {
	s.lis = lis
	s.logger.Info().Str("addr", lis.Addr().String()).Msg("gRPC health listening")
	return s.Server.Serve(lis)
}

// Stop flips every service to NOT_SERVING before draining connections.
func (s *Server) Stop() {
	s.Health.Shutdown()
	s.Server.GracefulStop()
	if s.lis != nil {
		_ = s.lis.Close()
	}
	s.logger.Info().Msg("gRPC server stopped")
}
