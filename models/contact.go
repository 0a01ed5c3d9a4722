// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`

	// Timestamp is the client-side send time in Unix milliseconds.
	// Defaults to the server time when the client omits it.
	Timestamp int64 `json:"timestamp"`

	CreatedAt time.Time `json:"created_at"`
}
