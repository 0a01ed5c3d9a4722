// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or zero token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, neither DSN nor host given, non-positive upload limit).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
