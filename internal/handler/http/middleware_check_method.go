// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function overrides that behaviour: the request is
// answered exactly like an unknown path, with HTTP 404 and the
// "Route not found." envelope, hiding the existence of the route from
// callers that use an unsupported method.
//
// The methods registered for an exactly matching pattern are logged to
// ease debugging of client mistakes.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}

			allowed := make([]string, 0, len(route.Handlers))
			for method := range route.Handlers {
				allowed = append(allowed, method)
			}
			logger.FromRequest(r).Debug().Str("method", r.Method).Strs("allowed", allowed).Msg("method is not registered for route")
			break
		}

		routeNotFound(w, r)
	}
}
