package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/MKhiriev/go-recipe-box/internal/utils"
	"github.com/MKhiriev/go-recipe-box/models"
)

const seedBcryptCost = 10

var errEmptyCredentials = errors.New("email and password must not be empty")

// seedAdmin creates an admin with the given credentials unless a user with
// that email exists. It reports whether a user was created.
func seedAdmin(ctx context.Context, users store.UserRepository, email, password string) (models.User, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.User{}, false, errEmptyCredentials
	}

	existing, err := users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, false, fmt.Errorf("error looking up user: %w", err)
	}

	hash, err := utils.HashPassword(password, seedBcryptCost)
	if err != nil {
		return models.User{}, false, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := users.CreateUser(ctx, models.User{
		Email:    email,
		Password: hash,
		IsAdmin:  true,
	})
	if err != nil {
		return models.User{}, false, fmt.Errorf("error creating user: %w", err)
	}

	return user, true, nil
}
