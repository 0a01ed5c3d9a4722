package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/handler"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":5000"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	addr := freeAddress(t)
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}}

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + addr + "/api/unknown")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Not found"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ReturnsWhenListenerFails(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop()),
		logger:     logger.Nop(),
	}

	done := make(chan error, 1)
	go func() { done <- s.run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("run did not return after the listener failed")
	}
}
