// Package server owns the HTTP listener for the admin API, the preview socket
// and the public page routes.
package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/application/container"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/http/routes"
	"github.com/AtRiskMedia/landstack-go/pkg/config"
)

// Multipart uploads are bounded by the body limit, not the header limit.
const maxHeaderBytes = 64 << 10

type Server struct {
	httpServer *http.Server
	container  *container.Container
	started    time.Time
}

// New builds the server for addr. An addr without a host binds every
// interface.
func New(port string, c *container.Container) *Server {
	addr := port
	if _, _, err := net.SplitHostPort(port); err != nil {
		addr = net.JoinHostPort("", port)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           routes.SetupRoutes(c),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       config.ServerReadTimeout,
			WriteTimeout:      config.ServerWriteTimeout,
			IdleTimeout:       config.ServerIdleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
			ErrorLog:          slog.NewLogLogger(c.Logger.System().Handler(), slog.LevelWarn),
		},
		container: c,
	}
}

// Start blocks until the listener fails or Stop is called. A clean stop
// returns nil.
func (s *Server) Start() error {
	s.started = time.Now()
	s.container.Logger.System().Info("Starting HTTP server",
		"address", s.httpServer.Addr,
		"readTimeout", s.httpServer.ReadTimeout,
		"writeTimeout", s.httpServer.WriteTimeout)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WrapIfWithDetails(err, "failed to start HTTP server", "address", s.httpServer.Addr)
	}
	return nil
}

// Stop drains in-flight requests until ctx expires. Preview sockets are
// hijacked and are closed by the preview hub when its context ends.
func (s *Server) Stop(ctx context.Context) error {
	s.container.Logger.Shutdown().Info("Shutting down HTTP server", "servedFor", time.Since(s.started))
	return s.httpServer.Shutdown(ctx)
}
