package store

import (
	"context"

	"github.com/MKhiriev/go-phone-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID set. A phone that
	// is already taken yields [ErrPhoneAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByPhone returns the stored user including the password hash,
	// or [ErrNoUserWasFound].
	FindUserByPhone(ctx context.Context, phone string) (models.User, error)
}

// ErrorClassificator maps a driver specific error to an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
