package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	httpHandler "github.com/MKhiriev/go-notes-keeper/internal/handler/http"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", handlers: nil, cfg: config.Server{HTTPAddress: ":8000"}},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":8000"}},
		{name: "no address", handlers: testHandlers(), cfg: config.Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			require.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, srv)
		})
	}
}

func TestServer_RunWithoutHTTPServer(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.Run(context.Background()), errNoServersToRun)
}

func TestServer_ServesUntilContextIsDone(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}

	srv, err := NewServer(testHandlers(), cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	require.NoError(t, s.httpServer.listen())
	addr := s.httpServer.listener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"data":"Hello"}`, string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + addr + "/")
	assert.Error(t, err, "expected the listener to be closed")
}

func TestServer_ListenError(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "256.0.0.1:bad"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	assert.Error(t, s.Run(context.Background()))
}

func testHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: httpHandler.NewHandler(&service.Services{}, config.Server{}, logger.Nop()),
	}
}
