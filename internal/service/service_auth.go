package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/MKhiriev/go-recipe-box/internal/utils"
	"github.com/MKhiriev/go-recipe-box/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	// allowAdminSignup lets registration requests create admin accounts.
	allowAdminSignup bool

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		bcryptCost:       cfg.BcryptCost,
		allowAdminSignup: cfg.AdminSignupAllowed(),
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is trimmed and lower-cased, the password is bcrypt-hashed and the
// optional admin flag is honoured unless admin signup is disabled.
//
// Returns the persisted user or:
//   - ErrMissingCredentials if email or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, ErrMissingCredentials
	}

	hash, err := utils.HashPassword(credentials.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:    email,
		Password: hash,
		IsAdmin:  credentials.IsAdmin && a.allowAdminSignup,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrMissingCredentials if email or password is empty.
//   - ErrUserNotFound if no account has the email.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, ErrMissingCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", email).Msg("login for unknown email")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.ComparePassword(foundUser.Password, credentials.Password); err != nil {
		log.Warn().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT carrying the user's id, email and admin
// flag. It expires after the configured token duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Identity(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify validates a raw JWT and returns the identity it carries.
//
// Any validation failure (bad signature, expired, wrong issuer, malformed)
// is normalised to ErrInvalidToken so that callers do not need to inspect
// low-level JWT errors. Verification is stateless: no database lookup.
func (a *authService) Verify(ctx context.Context, tokenString string, requireAdmin bool) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(tokenString) == "" {
		return models.Identity{}, ErrNoToken
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.Identity{}, ErrInvalidToken
	}

	if requireAdmin && !token.Identity.IsAdmin {
		log.Warn().Int64("id", token.Identity.ID).Msg("admin route requested by non-admin")
		return models.Identity{}, ErrAdminOnly
	}

	return token.Identity, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
