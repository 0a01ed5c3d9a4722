// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with 405 whenever a request path
// matches a registered route but the method is not handled. This handler
// instead forwards the request to the router's NotFound handler, so an
// unsupported method is treated exactly like an unknown path (the static
// frontend and its JSON 404).
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		router.NotFoundHandler().ServeHTTP(w, r)
	}
}
