package service

import (
	"context"

	"github.com/MKhiriev/go-phone-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks their credentials and manages session
// tokens.
type AuthService interface {
	// RegisterUser stores a new user with a hashed password. A taken phone
	// yields an error wrapping store.ErrPhoneAlreadyExists.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	// Login returns the user owning creds, or ErrInvalidCredentials for an
	// unknown phone and a wrong password alike.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	// CreateToken issues a signed session token for user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken verifies tokenString and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns ErrPasswordMismatch when password does not match hash.
	Compare(hash, password string) error
}
