package adserver

import (
	"fmt"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "github.com/hipstershop/adservice/proto/ads"
)

// healthService is the name the health register is keyed under. The empty
// string covers the whole server, which is what the demo's probes check.
const healthService = ""

// Server owns the gRPC listener, the health register, and the shutdown
// ordering: health goes NOT_SERVING strictly before the transport stops
// accepting calls.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	lis        net.Listener
	logger     *zap.Logger
	drain      time.Duration
}

// New binds the configured port and registers the ad and health services.
// A bind failure is terminal for the caller: no alternate port policy
// exists.
func New(port int, drain time.Duration, handler pb.AdServiceServer, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("bind port %d: %w", port, err)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	pb.RegisterAdServiceServer(grpcServer, handler)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return &Server{
		grpcServer: grpcServer,
		health:     healthServer,
		lis:        lis,
		logger:     logger,
		drain:      drain,
	}, nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}

// Serve marks the service healthy and blocks serving calls until Stop is
// called or the listener fails.
func (s *Server) Serve() error {
	s.health.SetServingStatus(healthService, healthpb.HealthCheckResponse_SERVING)
	s.logger.Info("ad service listening", zap.String("addr", s.lis.Addr().String()))
	if err := s.grpcServer.Serve(s.lis); err != nil {
		return fmt.Errorf("serve grpc: %w", err)
	}
	return nil
}

// Stop clears the health status first, so load balancers stop routing new
// calls, then drains in-flight calls up to the drain window before forcing
// the transport down.
func (s *Server) Stop() {
	s.health.SetServingStatus(healthService, healthpb.HealthCheckResponse_NOT_SERVING)

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("ad service stopped gracefully")
	case <-time.After(s.drain):
		s.logger.Warn("drain window expired, forcing stop", zap.Duration("drain", s.drain))
		s.grpcServer.Stop()
	}
}
