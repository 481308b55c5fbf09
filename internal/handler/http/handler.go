package http

import (
	"github.com/MKhiriev/go-phone-auth/internal/config"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/internal/metrics"
	"github.com/MKhiriev/go-phone-auth/internal/service"
	"github.com/MKhiriev/go-phone-auth/internal/utils"
)

type Handler struct {
	services *service.Services

	// metrics is nil when the /metrics endpoint is disabled.
	metrics *metrics.Metrics

	cfg config.Server

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
