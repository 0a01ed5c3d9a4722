// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if err := cfg.Storage.DB.validate(); err != nil {
		return err
	}
	if cfg.Storage.Files.MaxUploadSize <= 0 || cfg.Storage.Files.MaxBodySize <= 0 {
		return fmt.Errorf("%w: size limits must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidServerConfigs)
	}
	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	return nil
}

func (db DB) validate() error {
	if db.DSN == "" && db.Host == "" {
		return fmt.Errorf("%w: database DSN or host is required", ErrInvalidStorageConfigs)
	}
	if db.Port < 0 || db.Port > 65535 {
		return fmt.Errorf("%w: database port %d out of range", ErrInvalidStorageConfigs, db.Port)
	}
	if db.ConnectRetries < 1 {
		return fmt.Errorf("%w: at least one connect attempt is required", ErrInvalidStorageConfigs)
	}

	return nil
}
