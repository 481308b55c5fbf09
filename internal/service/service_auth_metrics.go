package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-phone-auth/internal/metrics"
	"github.com/MKhiriev/go-phone-auth/internal/store"
	"github.com/MKhiriev/go-phone-auth/models"
)

// AuthMetricsService counts the outcomes of the wrapped AuthService calls.
type AuthMetricsService struct {
	inner   AuthService
	metrics *metrics.Metrics
}

func NewAuthMetricsService(m *metrics.Metrics) AuthServiceWrapper {
	return &AuthMetricsService{metrics: m}
}

func (s *AuthMetricsService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	user, err := s.inner.RegisterUser(ctx, creds)
	s.metrics.RegisterTotal.WithLabelValues(outcomeOf(err)).Inc()
	return user, err
}

func (s *AuthMetricsService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	user, err := s.inner.Login(ctx, creds)
	s.metrics.LoginTotal.WithLabelValues(outcomeOf(err)).Inc()
	return user, err
}

func (s *AuthMetricsService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := s.inner.CreateToken(ctx, user)
	if err == nil {
		s.metrics.TokensIssued.Inc()
	}
	return token, err
}

func (s *AuthMetricsService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := s.inner.ParseToken(ctx, tokenString)

	result := "valid"
	switch {
	case err == nil:
	case errors.Is(err, ErrTokenIsExpired):
		result = "expired"
	default:
		result = "invalid"
	}
	s.metrics.TokenValidations.WithLabelValues(result).Inc()

	return claims, err
}

func (s *AuthMetricsService) Wrap(wrapped AuthService) AuthService {
	s.inner = wrapped
	return s
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrInvalidDataProvided):
		return metrics.OutcomeInvalidData
	case errors.Is(err, store.ErrPhoneAlreadyExists):
		return metrics.OutcomeDuplicate
	case errors.Is(err, ErrInvalidCredentials):
		return metrics.OutcomeInvalidCredentials
	default:
		return metrics.OutcomeError
	}
}
