// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod_AlwaysAnswersRouteNotFound(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/get-user", func(w http.ResponseWriter, _ *http.Request) {})
	router.Put("/pin-note/{noteId}", func(w http.ResponseWriter, _ *http.Request) {})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/get-user"},
		{http.MethodDelete, "/get-user"},
		{http.MethodGet, "/pin-note/abc"},
		{http.MethodHead, "/pin-note/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":true,"message":"Route not found."}`, rec.Body.String())
		})
	}
}

func TestCheckHTTPMethod_RegisteredMethodStillServed(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/get-user", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get-user", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
