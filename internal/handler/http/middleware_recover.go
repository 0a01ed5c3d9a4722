package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
)

// withRecover answers a panicking handler with a 500 JSON body.
// http.ErrAbortHandler is re-raised so the server can drop the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			writeError(w, r, fmt.Errorf("%w: %v", ErrPanicRecovered, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
