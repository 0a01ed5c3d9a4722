// Package http implements the REST transport of the recipe box.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging, CORS,
// body limits and response compression are handled in this package before
// requests are delegated to the service layer. The package also serves the
// uploaded files and the static frontend with its SPA fallback.
package http
