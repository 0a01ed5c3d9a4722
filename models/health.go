// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Health is the body of GET /health.
type Health struct {
	Status         string  `json:"status"`
	PID            int     `json:"pid"`
	Uptime         float64 `json:"uptime"`
	FrontendDir    string  `json:"frontendDir"`
	FrontendExists bool    `json:"frontendExists"`
	Database       string  `json:"database"`
	Version        string  `json:"version"`
}
