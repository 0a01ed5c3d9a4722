// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
type User struct {
	// ID is the server-assigned identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login of the user. Stored trimmed and lower-cased.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// IsAdmin grants access to recipe management and uploads.
	IsAdmin bool `json:"is_admin"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// Identity is the authenticated caller attached to a request context after
// successful token verification. It lives for a single request.
type Identity struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Identity returns the public identity view of the user.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin}
}
