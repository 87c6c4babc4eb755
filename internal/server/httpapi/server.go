// Package httpapi exposes the portal over HTTP: the phone-login endpoints
// and the token-gated activity CRUD.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shazhupan/activity-portal/internal/logging"
	"github.com/shazhupan/activity-portal/internal/server/activities"
	"github.com/shazhupan/activity-portal/internal/server/codes"
	"github.com/shazhupan/activity-portal/internal/server/config"
	"github.com/shazhupan/activity-portal/internal/server/users"
)

type Server struct {
	address       string
	logger        logging.Logger
	codes         *codes.Store
	users         *users.Service
	activities    *activities.Service
	jwtSecret     []byte
	tokenValidity time.Duration
	devEchoCode   bool
	corsOrigins   []string
}

func NewServer(cfg *config.Config, l logging.Logger, cs *codes.Store, us *users.Service, as *activities.Service) *Server {
	return &Server{
		address:       cfg.EndpointAddrHTTP,
		logger:        l.With("module", "http_server"),
		codes:         cs,
		users:         us,
		activities:    as,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		devEchoCode:   cfg.DevEchoCode,
		corsOrigins:   cfg.CORSAllowedOrigins,
	}
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
