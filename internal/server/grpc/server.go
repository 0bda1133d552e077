// Package grpc runs the operational gRPC endpoint of recipeshare: the
// standard grpc.health.v1 service used by load balancers and orchestrators.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/recipeshare/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type HealthServer struct {
	address string
	logger  logging.Logger
	health  *health.Server
}

func NewHealthServer(a string, l logging.Logger) *HealthServer {
	return &HealthServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		health:  health.NewServer(),
	}
}

// SetServing flips the overall status reported for the empty service name.
func (s *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
}

// newGRPCServer registers the health service on a fresh server.
func (s *HealthServer) newGRPCServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	healthpb.RegisterHealthServer(srv, s.health)
	return srv
}

// Serve reports SERVING and blocks on lis until ctx is cancelled.
func (s *HealthServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newGRPCServer()
	s.SetServing(true)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}

func (s *HealthServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}
