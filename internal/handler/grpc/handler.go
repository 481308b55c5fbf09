package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/internal/utils"
)

// ServiceName is the name reported by the health service in addition to
// the overall server status ("").
const ServiceName = "phoneauth.Auth"

// Handler is the root gRPC transport handler.
//
// It owns the standard grpc.health.v1 service. A handler instance is created
// once at startup and shared by the gRPC server.
type Handler struct {
	health *health.Server

	traceIDs *utils.UUIDGenerator

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until [Handler.SetServing] is called.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health:   health.NewServer(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing flips every reported service to SERVING or NOT_SERVING.
func (h *Handler) SetServing(serving bool) {
	if serving {
		h.setStatus(healthpb.HealthCheckResponse_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
}

// Shutdown marks all services NOT_SERVING permanently; later status
// updates are ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
