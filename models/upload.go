// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadedFile describes a stored upload.
type UploadedFile struct {
	// URL is the address the frontend should use to display the file.
	URL string `json:"url"`

	// Filename is the generated name the file was stored under.
	Filename string `json:"filename"`
}
