package http

import "net/http"

// withBodyLimit caps request bodies at the configured size. Reading past
// the limit fails with *http.MaxBytesError, which is answered with 413.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.files.MaxBodySize > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.files.MaxBodySize)
		}
		next.ServeHTTP(w, r)
	})
}
