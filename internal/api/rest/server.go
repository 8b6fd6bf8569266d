package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Jack-Berry/UMC-Back/internal/logger"
	"github.com/Jack-Berry/UMC-Back/internal/model"
)

var _ model.Server = (*Server)(nil)

// Server serves the HTTP API and the websocket endpoint.
type Server struct {
	address string
	server  *http.Server
	logger  *logger.Logger
}

// NewServer constructs an HTTP server for handler listening on port.
func NewServer(port string, handler http.Handler, readHeaderTimeout time.Duration, logger *logger.Logger) *Server {
	address := ":" + port
	return &Server{
		address: address,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// Start accepts connections until Stop is called.
func (s *Server) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	s.logger.Info("HTTP server: listening", "address", listener.Addr().String())
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop drains in-flight requests until ctx is done. Hijacked websocket
// connections are not tracked here and must be closed by the hub.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Address returns the configured listen address.
func (s *Server) Address() string {
	return s.address
}
