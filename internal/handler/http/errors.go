// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNotFound is returned for requests that match no route.
	ErrNotFound = errors.New("not found")

	// errMissingIdentity is returned when a protected handler runs without
	// the identity the auth middleware attaches.
	errMissingIdentity = errors.New("no identity in request context")

	// ErrPanicRecovered marks a handler panic answered with 500.
	ErrPanicRecovered = errors.New("panic recovered in http handler")
)
