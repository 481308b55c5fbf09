// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token.
//
// UserID and Phone are carried as the private "userId" and "phone" claims so
// that clients which decode the token can read them directly. The standard
// "sub" claim mirrors UserID.
type Claims struct {
	UserID int64  `json:"userId"`
	Phone  string `json:"phone"`

	jwt.RegisteredClaims
}

// GetUserID extracts the user identifier from the "sub" claim, parses it as
// a base-10 int64 and checks that it matches the "userId" claim.
func (c *Claims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	if userID != c.UserID {
		return 0, fmt.Errorf("subject %d does not match userId claim %d", userID, c.UserID)
	}

	return userID, nil
}

// Token is a signed session token together with the claims it was built from.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Claims are the claims embedded into SignedString.
	Claims Claims `json:"-"`

	// ExpiresAt is the moment the token stops being valid.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
