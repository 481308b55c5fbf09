// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-phone-auth server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal UI
// from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped to a [*ResponseError] carrying the message the
// server sent; it unwraps to one of the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrBadRequest] for 400,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-phone-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-phone-auth server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and returns the server's message.
	Register(ctx context.Context, creds models.Credentials) (string, error)

	// Login authenticates the user. On success the issued token is stored
	// via SetToken and the full login response is returned.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Me returns the identity carried by the stored token.
	Me(ctx context.Context) (models.UserSummary, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
