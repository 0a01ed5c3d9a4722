package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrMissingCredentials  = errors.New("email and password are required")
	ErrUserNotFound        = errors.New("user not found")
	ErrWrongPassword       = errors.New("invalid password")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrNoToken      = errors.New("no token provided")
	ErrInvalidToken = errors.New("invalid token")
	ErrAdminOnly    = errors.New("admin only")

	ErrInvalidRecipeID = errors.New("invalid recipe id")
	ErrTitleRequired   = errors.New("title is required")
	ErrUIDRequired     = errors.New("uid required")

	ErrContactFieldsRequired = errors.New("name, email and message are required")

	ErrNoFileUploaded  = errors.New("no file uploaded")
	ErrPayloadTooLarge = errors.New("payload too large")
)
