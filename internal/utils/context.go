// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, log-safe
// fingerprints, HTTP response writing, HTTP client initialization, JWT token
// generation and verification, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-phone-auth/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the authenticated user ID.
	UserIDCtxKey = contextKey("userID")

	// ClaimsCtxKey is the key used to store the verified token claims.
	ClaimsCtxKey = contextKey("claims")
)

// WithClaims returns a copy of ctx carrying claims and the user ID taken
// from them.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	ctx = context.WithValue(ctx, ClaimsCtxKey, claims)
	return context.WithValue(ctx, UserIDCtxKey, claims.UserID)
}

// GetClaimsFromContext retrieves the claims stored by WithClaims.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
