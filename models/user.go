// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the only persisted entity: a phone number mapped to a salted
// password hash and a store-assigned identifier.
//
// A User is created once at registration and is never updated or deleted.
type User struct {
	// UserID is the surrogate identifier assigned by the credential store.
	UserID int64 `json:"id"`

	// Phone is the login identifier. Unique across all users.
	Phone string `json:"phone"`

	// Password holds the bcrypt hash of the user's secret once the user has
	// been registered. It is never serialized.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the non-sensitive part of the user that may be sent to
// clients.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.UserID,
		Phone: u.Phone,
	}
}
