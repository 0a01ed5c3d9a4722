package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-recipe-box/internal/service"
)

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// recipeIDParam parses a positive recipe id from the named URL parameter.
func recipeIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrInvalidRecipeID
	}
	return id, nil
}
