package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInit_RegisteredRoutes verifies that every public and protected route
// is registered with the expected method.
func TestInit_RegisteredRoutes(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	want := map[string]string{
		"/":                     http.MethodGet,
		"/version":              http.MethodGet,
		"/create-account":       http.MethodPost,
		"/login":                http.MethodPost,
		"/logout/{userId}":      http.MethodDelete,
		"/get-user":             http.MethodGet,
		"/add-note":             http.MethodPost,
		"/edit-note/{noteId}":   http.MethodPut,
		"/get-all-notes":        http.MethodGet,
		"/delete-note/{noteId}": http.MethodDelete,
		"/pin-note/{noteId}":    http.MethodPut,
		"/search-notes":         http.MethodGet,
	}

	got := make(map[string]string)
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			got[route.Pattern] = method
		}
	}

	assert.Equal(t, want, got)
}

// TestInit_ProtectedRoutesRequireToken verifies that protected routes answer
// a bare 401 without a valid token and never reach the services.
func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	protected := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/logout/" + testUserID},
		{http.MethodGet, "/get-user"},
		{http.MethodPost, "/add-note"},
		{http.MethodPut, "/edit-note/" + testNoteID},
		{http.MethodGet, "/get-all-notes"},
		{http.MethodDelete, "/delete-note/" + testNoteID},
		{http.MethodPut, "/pin-note/" + testNoteID},
		{http.MethodGet, "/search-notes?query=x"},
	}

	h := newTestHandler(t, &service.Services{})

	for _, route := range protected {
		for _, token := range []string{"", "expired"} {
			t.Run(route.method+" "+route.path+" token="+token, func(t *testing.T) {
				rec := serve(t, h, route.method, route.path, `{}`, token)

				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Empty(t, rec.Body.String())
			})
		}
	}
}

// TestInit_UnknownRoutes verifies that unknown paths and unregistered methods
// on known paths are both answered with the "Route not found." envelope.
func TestInit_UnknownRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/nope"},
		{name: "api prefix is not served", method: http.MethodGet, path: "/api/get-all-notes"},
		{name: "wrong method on public route", method: http.MethodGet, path: "/login"},
		{name: "wrong method on protected route", method: http.MethodPost, path: "/get-all-notes"},
		{name: "patch is never registered", method: http.MethodPatch, path: "/edit-note/" + testNoteID},
	}

	h := newTestHandler(t, &service.Services{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, h, tt.method, tt.path, "", "valid")

			assert.Equal(t, http.StatusNotFound, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.True(t, env.Error)
			assert.Equal(t, "Route not found.", env.Message)
		})
	}
}

func TestInit_CORSPreflight(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodOptions, "/add-note", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Less(t, rec.Code, http.StatusMultipleChoices)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestInit_CORSOnRegularResponse(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_TraceIDHeader(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec := serve(t, h, http.MethodGet, "/", "", "")

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	notes := &mockNoteService{
		listFn: func(_ context.Context, _ string) ([]models.Note, error) {
			panic("boom")
		},
	}
	h := newTestHandler(t, &service.Services{NoteService: notes})

	var rec *httptest.ResponseRecorder
	require.NotPanics(t, func() {
		rec = serve(t, h, http.MethodGet, "/get-all-notes", "", "valid")
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
