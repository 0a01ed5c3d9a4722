// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the canonical claim set carried by every issued token.
//
// The subject ("sub") holds the user ID encoded as a base-10 string; email and
// the admin flag are private claims so that authorization does not need a
// database round-trip.
type Claims struct {
	jwt.RegisteredClaims

	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Identity converts the claim set into an [Identity].
// Returns an error if the subject is missing or not a valid int64.
func (c *Claims) Identity() (Identity, error) {
	if c.Subject == "" {
		return Identity{}, fmt.Errorf("empty subject in token claims")
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("error converting subject to user ID: %w", err)
	}

	return Identity{ID: userID, Email: c.Email, IsAdmin: c.IsAdmin}, nil
}

// Token wraps a signed JWT together with the identity it was issued for.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity is the caller the token was issued for (or decoded from).
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
