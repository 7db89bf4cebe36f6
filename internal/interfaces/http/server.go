package http

import (
	"context"
	"net/http"

	"github.com/turtacn/go-selfies/internal/config"
	"github.com/turtacn/go-selfies/internal/monitoring/logging"
)

// Server wraps http.Server with the platform's lifecycle conventions.
type Server struct {
	srv    *http.Server
	cfg    config.ServerConfig
	logger logging.Logger
}

// NewServer builds the HTTP server from configuration and the route tree.
func NewServer(cfg config.ServerConfig, h *Handlers, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Server{
		srv: &http.Server{
			Addr:         cfg.Addr,
			Handler:      NewRouter(h, cfg.Mode),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		cfg:    cfg,
		logger: logger.Named("server"),
	}
}

// Run serves until the context is cancelled, then shuts down gracefully
// within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", logging.String("addr", s.cfg.Addr))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

//Personal.AI order the ending
