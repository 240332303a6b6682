// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-file-crypt/models"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path is routed but the method is not. This handler
// answers such requests the same way as unknown paths: 404 with an error
// envelope, so a GET on /encrypt does not reveal the route. Patterns with
// URL parameters are matched through [chi.Mux.Match], a request the router
// can serve after all is passed on unchanged.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

// notFound answers unknown routes with the error envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.Envelope{Success: false, Error: errNotFound.Error()}, http.StatusNotFound)
}
