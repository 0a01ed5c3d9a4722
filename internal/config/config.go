// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: environment, token parameters,
	// logging and registration policy.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and for the
	// file stores (uploads, frontend bundle).
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env is the deployment environment name (e.g. "development",
	// "production"). In production database connections default to SSL.
	// Env: APP_ENV
	Env string `env:"ENV"`

	// LogLevel is the minimal zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the shared secret used to sign and verify JWT tokens.
	// Required. Rotating it invalidates every issued token.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required from every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AllowAdminSignup controls whether the "is_admin" field of a
	// registration request is honoured. A pointer so that an explicit false
	// survives merging.
	// Env: APP_ALLOW_ADMIN_SIGNUP
	AllowAdminSignup *bool `env:"ALLOW_ADMIN_SIGNUP"`

	// BcryptCost is the cost factor used when hashing passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds upload and static-file settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for PostgreSQL. Either DSN or the discrete
// parameters are used; DSN wins when both are set.
type DB struct {
	// DSN is a full connection string, URL or keyword/value form.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Env: STORAGE_DB_HOST
	Host string `env:"HOST"`
	// Env: STORAGE_DB_PORT
	Port int `env:"PORT"`
	// Env: STORAGE_DB_USER
	User string `env:"USER"`
	// Env: STORAGE_DB_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`

	// SSL forces encrypted connections as the first strategy.
	// Env: STORAGE_DB_SSL
	SSL bool `env:"SSL"`

	// MaxConns is the maximum number of open connections in the pool.
	// Env: STORAGE_DB_MAX_CONNS
	MaxConns int `env:"MAX_CONNS"`

	// ConnectRetries is the number of connection attempts per SSL mode.
	// Env: STORAGE_DB_CONNECT_RETRIES
	ConnectRetries int `env:"CONNECT_RETRIES"`

	// ConnectBackoff is the base delay of the exponential backoff between
	// connection attempts.
	// Env: STORAGE_DB_CONNECT_BACKOFF
	ConnectBackoff time.Duration `env:"CONNECT_BACKOFF"`
}

// Files holds file-system and object-storage settings.
type Files struct {
	// UploadsDir is the directory uploaded images are written to and served
	// from under /uploads/.
	// Env: STORAGE_FILES_UPLOADS_DIR
	UploadsDir string `env:"UPLOADS_DIR"`

	// FrontendDir is the directory holding the static frontend bundle.
	// Env: STORAGE_FILES_FRONTEND_DIR
	FrontendDir string `env:"FRONTEND_DIR"`

	// MaxUploadSize is the upload size limit in bytes.
	// Env: STORAGE_FILES_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// MaxBodySize is the JSON request body limit in bytes.
	// Env: STORAGE_FILES_MAX_BODY_SIZE
	MaxBodySize int64 `env:"MAX_BODY_SIZE"`

	// S3 switches uploads to an S3-compatible bucket when Bucket is set.
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds settings of an S3-compatible object store (AWS, MinIO, R2, ...).
type S3 struct {
	// Env: STORAGE_FILES_S3_BUCKET
	Bucket string `env:"BUCKET" json:"bucket"`
	// Env: STORAGE_FILES_S3_REGION
	Region string `env:"REGION" json:"region"`
	// Endpoint overrides the AWS endpoint, e.g. a MinIO address.
	// Env: STORAGE_FILES_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT" json:"endpoint"`
	// Env: STORAGE_FILES_S3_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY" json:"access_key"`
	// Env: STORAGE_FILES_S3_SECRET_KEY
	SecretKey string `env:"SECRET_KEY" json:"secret_key"`
	// PublicURL is the base URL objects are reachable at. Defaults to
	// "<endpoint>/<bucket>".
	// Env: STORAGE_FILES_S3_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL" json:"public_url"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "[host]:port" format (e.g. ":5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout cancels a request context after the given duration.
	// Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// IsProduction reports whether the application runs in production.
func (a App) IsProduction() bool {
	return a.Env == EnvProduction
}

// AdminSignupAllowed reports whether registration may create admins.
func (a App) AdminSignupAllowed() bool {
	return a.AllowAdminSignup == nil || *a.AllowAdminSignup
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources:
//  0. Defaults
//  1. Environment variables
//  2. Command-line flags parsed from args (nil skips flag parsing)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Later sources override non-zero fields of earlier ones.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// GetDBConfig loads only the database settings from defaults, environment
// variables and the optional JSON file. It serves maintenance tools that
// need no token key or listen address.
func GetDBConfig() (DB, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return DB{}, err
	}

	if err := cfg.Storage.DB.validate(); err != nil {
		return DB{}, err
	}

	return cfg.Storage.DB, nil
}
