// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Recipe is a single recipe as stored in the "recipes" table.
//
// Reviews is not a column: it is populated by the service layer from the
// "reviews" table and always serialized as an array (never null).
type Recipe struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Image        *string   `json:"image"`
	CreatedBy    *int64    `json:"created_by"`
	Description  *string   `json:"description"`
	Ingredients  *string   `json:"ingredients"`
	Instructions *string   `json:"instructions"`
	Favorite     bool      `json:"favorite"`
	Ratings      Ratings   `json:"ratings"`
	CreatedAt    time.Time `json:"created_at"`

	Reviews []Review `json:"reviews"`
}

// RecipeInput is the body of create and update requests.
// Optional text fields are stored as NULL when empty.
type RecipeInput struct {
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	Image        *string `json:"image,omitempty"`
	Description  *string `json:"description,omitempty"`
	Ingredients  *string `json:"ingredients,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
	Favorite     bool    `json:"favorite,omitempty"`

	// CreatedBy is taken from the authenticated identity, never from the body.
	CreatedBy *int64 `json:"-"`
}

// Ratings maps a client-side user identifier to the rating that user gave.
// It is persisted as a JSONB object.
type Ratings map[string]float64

// Scan implements [sql.Scanner]. NULL, arrays and empty values become an
// empty map.
func (r *Ratings) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*r = Ratings{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported ratings type %T", src)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		*r = Ratings{}
		return nil
	}

	parsed := make(Ratings)
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("error decoding ratings: %w", err)
	}
	*r = parsed
	return nil
}

// Value implements [driver.Valuer].
func (r Ratings) Value() (driver.Value, error) {
	if r == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]float64(r))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// MarshalJSON always renders an object, even for a nil map.
func (r Ratings) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]float64(r))
}

// Review is a single review row of the "reviews" table.
type Review struct {
	ID        int64     `json:"id"`
	RecipeID  int64     `json:"recipe_id"`
	UID       *string   `json:"uid"`
	Reviewer  string    `json:"reviewer"`
	Text      string    `json:"text"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewInput is the body of POST /api/recipes/{id}/reviews.
type ReviewInput struct {
	UID      UID    `json:"uid"`
	Reviewer string `json:"reviewer"`
	Text     string `json:"text"`
	Rating   Number `json:"rating"`
}

// RatingInput is the body of POST /api/recipes/{id}/rate.
type RatingInput struct {
	UID    UID    `json:"uid"`
	Rating Number `json:"rating"`
}

// UID is a client-side user identifier. Frontends send it either as a string
// or as a number, both are accepted and kept as a string.
type UID string

// UnmarshalJSON accepts strings, numbers and null.
func (u *UID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*u = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*u = UID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("uid must be a string or a number: %w", err)
	}
	*u = UID(n.String())
	return nil
}

// Number is a lenient numeric JSON value: numbers and numeric strings are
// accepted, anything else (including null and garbage) decodes to zero.
type Number float64

// UnmarshalJSON implements [json.Unmarshaler].
func (n *Number) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*n = Number(value)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			*n = 0
			return nil
		}
		*n = Number(f)
	case bool:
		if value {
			*n = 1
		} else {
			*n = 0
		}
	default:
		*n = 0
	}
	return nil
}
