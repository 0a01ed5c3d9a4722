package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/handler"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down
// gracefully.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until ctx is done.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.logger.Info().Msg("Launching HTTP server")
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-stopped
	case <-stopped:
		// listener failed, e.g. the address is taken
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
