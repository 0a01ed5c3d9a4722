package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via [service.AuthService.Verify] and stores the caller's identity in the
// request context with [utils.WithIdentity] before delegating to the next
// handler.
//
// Requests are rejected with 401 when the token is missing or invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return h.verifyToken(next, false)
}

// adminOnly is [Handler.auth] that additionally answers 403 to callers whose
// token does not carry the admin flag.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return h.verifyToken(next, true)
}

func (h *Handler) verifyToken(next http.Handler, requireAdmin bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		// a malformed header counts as a missing token
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("no bearer token in request")
		}

		identity, err := h.services.AuthService.Verify(ctx, tokenString, requireAdmin)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Int64("user_id", identity.ID).Bool("is_admin", identity.IsAdmin).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
