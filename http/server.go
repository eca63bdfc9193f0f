package http

import (
	"context"
	"net/http"
	"time"

	ddd "github.com/dddkit/ddd-go"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Server mounts endpoints on a gorilla/mux router and manages the listener
// lifecycle.
type Server struct {
	router *mux.Router
	server *http.Server
	logger *ddd.Logger
}

// NewServer creates a Server listening on address.
func NewServer(address string, logger *ddd.Logger) *Server {
	router := mux.NewRouter()
	return &Server{
		router: router,
		server: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Register mounts the endpoint on the router.
func (s *Server) Register(endpoint Endpoint) {
	s.logger.Info("registering endpoint", "path", endpoint.Path(), "methods", endpoint.Methods())
	s.router.HandleFunc(endpoint.Path(), endpoint.Handler()).Methods(endpoint.Methods()...)
}

// Router exposes the underlying router, for middleware and tests.
func (s *Server) Router() *mux.Router {
	return s.router
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		s.logger.Info("http server listening", "address", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		s.logger.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
