package grpcserver

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name the catalog reports its health under.
const ServiceName = "leaguecatalog.Catalog"

// Probe checks one dependency, a nil error meaning it's usable.
type Probe func(ctx context.Context) error

type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// HealthServer exposes the standard grpc health service, fed by the probes.
type HealthServer struct {
	grpcServer   *grpc.Server
	healthServer *health.Server
	probes       map[string]Probe
	logger       Logger
	listener     net.Listener
}

// NewHealthServer creates the server, every service starts as NOT_SERVING until the first refresh.
func NewHealthServer(logger Logger, probes map[string]Probe) *HealthServer {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{
		grpcServer:   grpcServer,
		healthServer: healthServer,
		probes:       probes,
		logger:       logger,
	}
}

// Start listens on addr and serves in the background.
func (hs *HealthServer) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("couldn't start the health listener: %w", err)
	}
	hs.listener = listener

	go func() {
		hs.logger.Infof("Running gRPC health server on %s", listener.Addr())
		if err := hs.grpcServer.Serve(listener); err != nil {
			hs.logger.Errorf("gRPC health server stopped: %v", err)
		}
	}()

	return nil
}

// Addr is the address the server is listening on.
func (hs *HealthServer) Addr() string {
	if hs.listener == nil {
		return ""
	}
	return hs.listener.Addr().String()
}

// Refresh runs every probe once and publishes the result.
// Each probe is reported under its own name and the catalog is serving only if all of them pass.
func (hs *HealthServer) Refresh(ctx context.Context) {
	overall := grpc_health_v1.HealthCheckResponse_SERVING

	for name, probe := range hs.probes {
		status := grpc_health_v1.HealthCheckResponse_SERVING
		if err := probe(ctx); err != nil {
			hs.logger.Errorf("Health probe %s failed: %v", name, err)
			status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
			overall = status
		}
		hs.healthServer.SetServingStatus(name, status)
	}

	hs.healthServer.SetServingStatus("", overall)
	hs.healthServer.SetServingStatus(ServiceName, overall)
}

// Shutdown marks everything as not serving and stops the server.
func (hs *HealthServer) Shutdown() {
	hs.healthServer.Shutdown()
	hs.grpcServer.GracefulStop()
}
