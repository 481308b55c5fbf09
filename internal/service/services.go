package service

import (
	"github.com/MKhiriev/go-phone-auth/internal/config"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/internal/metrics"
	"github.com/MKhiriev/go-phone-auth/internal/store"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices builds the service layer on top of storages. The AuthService
// is decorated with validation and, when m is not nil, with metrics.
func NewServices(storages *store.Storages, cfg config.App, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	var authService AuthService = NewAuthService(storages.UserRepository, NewBcryptHasher(cfg.PasswordHashCost), cfg, logger)

	wrappers := []AuthServiceWrapper{NewAuthValidationService()}
	if m != nil {
		wrappers = append(wrappers, NewAuthMetricsService(m))
	}
	for _, w := range wrappers {
		authService = w.Wrap(authService)
	}

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}
