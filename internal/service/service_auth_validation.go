package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-phone-auth/internal/validators"
	"github.com/MKhiriev/go-phone-auth/models"
)

// AuthValidationService rejects malformed credentials before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewCredentialsValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterUser(ctx, creds)
}

// Login only checks that both fields are present. A missing field fails
// with ErrInvalidCredentials like an unknown phone, and format rules are not
// applied so that a malformed phone fails the same way.
func (v *AuthValidationService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if creds.Phone == "" || creds.Password == "" {
		return models.User{}, fmt.Errorf("%w: phone and password are required", ErrInvalidCredentials)
	}

	return v.inner.Login(ctx, creds)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	if tokenString == "" {
		return models.Claims{}, ErrTokenIsMalformed
	}

	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
