// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FavoriteToggle is the result of toggling a favorite. Exactly one of the
// fields is set.
type FavoriteToggle struct {
	Added   bool `json:"added,omitempty"`
	Removed bool `json:"removed,omitempty"`
}

// FavoriteIDs is the body of GET /api/favorites/ids.
type FavoriteIDs struct {
	IDs []int64 `json:"ids"`
}
