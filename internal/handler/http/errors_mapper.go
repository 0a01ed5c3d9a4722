package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/service"
	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/MKhiriev/go-recipe-box/internal/utils"
)

// errorResponse is the status and client-facing message of a known error.
type errorResponse struct {
	status  int
	message string
}

const serverErrorMessage = "Server error"

var errorStatusMap = map[error]errorResponse{
	ErrInvalidJSON: {http.StatusBadRequest, "Invalid JSON was passed"},
	ErrNotFound:    {http.StatusNotFound, "Not found"},

	errMissingIdentity: {http.StatusUnauthorized, "Unauthorized"},

	service.ErrInvalidDataProvided:   {http.StatusBadRequest, "Invalid data provided"},
	service.ErrMissingCredentials:    {http.StatusBadRequest, "Email and password are required"},
	service.ErrUserNotFound:          {http.StatusBadRequest, "User not found"},
	service.ErrWrongPassword:         {http.StatusBadRequest, "Invalid password"},
	service.ErrInvalidRecipeID:       {http.StatusBadRequest, "Invalid recipe id"},
	service.ErrTitleRequired:         {http.StatusBadRequest, "Title is required"},
	service.ErrUIDRequired:           {http.StatusBadRequest, "uid required"},
	service.ErrContactFieldsRequired: {http.StatusBadRequest, "Name, email and message are required"},
	service.ErrNoFileUploaded:        {http.StatusBadRequest, "No file uploaded"},

	service.ErrNoToken:      {http.StatusUnauthorized, "No token provided"},
	service.ErrInvalidToken: {http.StatusUnauthorized, "Invalid token"},
	service.ErrAdminOnly:    {http.StatusForbidden, "Admin only"},

	service.ErrPayloadTooLarge: {http.StatusRequestEntityTooLarge, "Payload too large"},

	store.ErrRecipeNotFound:     {http.StatusNotFound, "Recipe not found"},
	store.ErrEmailAlreadyExists: {http.StatusConflict, "Email already registered"},
	store.ErrNotInitialized:     {http.StatusServiceUnavailable, "Database not ready"},
}

func statusFromError(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		resp := errorStatusMap[service.ErrPayloadTooLarge]
		return resp.status, resp.message
	}

	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, serverErrorMessage
}

// writeError logs err and answers with the mapped {"error": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
