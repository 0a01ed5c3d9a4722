package http

import "net/http"

const (
	corsAllowMethods = "GET, HEAD, PUT, PATCH, POST, DELETE"
	corsMaxAge       = "86400"
)

// withCORS allows every origin. Preflight requests are answered with 204
// and never reach the router.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", "*")

		if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
			next.ServeHTTP(w, r)
			return
		}

		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
			header.Set("Access-Control-Allow-Headers", requested)
			header.Add("Vary", "Access-Control-Request-Headers")
		}
		header.Set("Access-Control-Max-Age", corsMaxAge)
		header.Set("Content-Length", "0")
		w.WriteHeader(http.StatusNoContent)
	})
}
