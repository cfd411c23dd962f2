// README: HTTP server wrapper with timeouts and graceful shutdown.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tripfit/internal/config"
	"tripfit/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	srv *http.Server
	log *logger.Logger
}

func NewServer(cfg config.Config, handler http.Handler, log *logger.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         cfg.HTTP.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
		},
		log: log,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.LogSystem("http", "listen", true, logger.Fields{"addr": s.srv.Addr})
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.log.LogSystem("http", "shutdown", false, logger.Fields{"error": err.Error()})
		return err
	}
	s.log.LogSystem("http", "shutdown", true, nil)
	return nil
}
