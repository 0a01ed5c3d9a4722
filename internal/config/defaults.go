// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	// EnvProduction is the App.Env value of production deployments.
	EnvProduction = "production"

	defaultEnv            = "development"
	defaultTokenIssuer    = "recipe-box"
	defaultTokenDuration  = time.Hour
	defaultBcryptCost     = 10
	defaultDBHost         = "localhost"
	defaultDBPort         = 5432
	defaultDBMaxConns     = 10
	defaultConnectRetries = 3
	defaultConnectBackoff = 500 * time.Millisecond
	defaultUploadsDir     = "uploads"
	defaultFrontendDir    = "frontend"
	defaultMaxUploadSize  = 5 << 20
	defaultMaxBodySize    = 10 << 20
	defaultHTTPAddress    = ":5000"
	defaultShutdownWait   = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	allowAdminSignup := true

	return &StructuredConfig{
		App: App{
			Env:              defaultEnv,
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			AllowAdminSignup: &allowAdminSignup,
			BcryptCost:       defaultBcryptCost,
		},
		Storage: Storage{
			DB: DB{
				Host:           defaultDBHost,
				Port:           defaultDBPort,
				MaxConns:       defaultDBMaxConns,
				ConnectRetries: defaultConnectRetries,
				ConnectBackoff: defaultConnectBackoff,
			},
			Files: Files{
				UploadsDir:    defaultUploadsDir,
				FrontendDir:   defaultFrontendDir,
				MaxUploadSize: defaultMaxUploadSize,
				MaxBodySize:   defaultMaxBodySize,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			ShutdownTimeout: defaultShutdownWait,
		},
	}
}
