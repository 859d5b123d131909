// Package server binds the resolved address and drives the HTTP accept
// loop until its context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"random-service/internal/config/configs"
	"random-service/internal/core/domain"
	"random-service/internal/logger"
)

// Server wraps an http.Server with explicit bind and graceful shutdown.
type Server struct {
	srv    *http.Server
	cfg    configs.HTTP
	logger *slog.Logger
}

// New creates a server dispatching every request to handler.
func New(handler http.Handler, cfg configs.HTTP, logger *slog.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),

			// "OPTIONS *" goes to handler like any other request.
			DisableGeneralOptionsHandler: true,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// Listen binds a TCP listener on addr and logs the effective address.
func (s *Server) Listen(addr domain.Address) (net.Listener, error) {
	s.logger.Debug("trying to bind server to address", slog.String("address", addr.String()))
	ln, err := net.ListenTCP("tcp", net.TCPAddrFromAddrPort(addr.AddrPort()))
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", addr, err)
	}
	s.logger.Info("used address", slog.String("address", ln.Addr().String()))
	return ln, nil
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured timeout. It returns nil after a clean
// shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Trace(ctx, s.logger, "serving")
		serveErr <- s.srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server gracefully stopped")
	return nil
}

// Run binds addr and serves until ctx is cancelled. A bind failure is
// returned before any request is served.
func (s *Server) Run(ctx context.Context, addr domain.Address) error {
	ln, err := s.Listen(addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}
