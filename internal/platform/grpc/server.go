// Package grpc holds the gRPC health plumbing shared by processes.
package grpc

import (
	"errors"
	"fmt"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer is a gRPC server that only exposes the health service.
type HealthServer struct {
	listener net.Listener
	server   *gogrpc.Server
	health   *health.Server
}

// ListenHealth binds addr and registers a health service. The overall ("")
// status starts SERVING; named services start unknown until SetServing.
func ListenHealth(addr string) (*HealthServer, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	server := gogrpc.NewServer(gogrpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	return &HealthServer{listener: listener, server: server, health: healthServer}, nil
}

// Addr returns the bound address.
func (s *HealthServer) Addr() net.Addr {
	return s.listener.Addr()
}

// SetServing marks service as SERVING.
func (s *HealthServer) SetServing(service string) {
	s.health.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_SERVING)
}

// Serve blocks until Stop. A stopped server is not an error.
func (s *HealthServer) Serve() error {
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, gogrpc.ErrServerStopped) {
		return fmt.Errorf("serve health: %w", err)
	}
	return nil
}

// Stop reports NOT_SERVING to watchers, waits up to timeout for in-flight
// checks, then forces the server down.
func (s *HealthServer) Stop(timeout time.Duration) {
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		s.server.Stop()
		<-done
	}
}
