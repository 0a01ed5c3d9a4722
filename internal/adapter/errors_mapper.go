package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-recipe-box/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
}

// errorMessage prefers the "error" field of a JSON body and falls back to
// the raw body or the status text.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
