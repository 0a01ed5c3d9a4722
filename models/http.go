// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of the register and login requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// IsAdmin is honoured on registration only.
	IsAdmin bool `json:"is_admin,omitempty"`
}

// ErrorResponse is the JSON body of every failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a plain confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Message string   `json:"message"`
	User    Identity `json:"user"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    Identity `json:"user"`
}

// RecipeResponse is returned after a recipe was created or updated.
type RecipeResponse struct {
	Message string `json:"message"`
	Recipe  Recipe `json:"recipe"`
}

// ReviewResponse is returned after a review was added.
type ReviewResponse struct {
	Message string `json:"message"`
	Review  Review `json:"review"`
}

// RatingsResponse is returned after a rating was saved.
type RatingsResponse struct {
	Message string  `json:"message"`
	Ratings Ratings `json:"ratings"`
}

// ContactResponse is returned after a contact message was stored.
type ContactResponse struct {
	Message string         `json:"message"`
	Data    ContactMessage `json:"data"`
}
