// Package server exposes plan generation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/fitplan/internal/llm"
	"github.com/alexanderramin/fitplan/internal/service"
)

const (
	defaultPort     = "8080"
	shutdownTimeout = 5 * time.Second
)

// Services are the use cases the HTTP layer dispatches to.
type Services struct {
	Generation service.GenerationService
	Profiles   service.ProfileService
	History    service.PlanHistoryService

	// Model is reported on /health. Nil means the model is disabled.
	Model llm.LLMClient
}

// Server holds the echo router and its dependencies.
type Server struct {
	echo     *echo.Echo
	services Services
	log      zerolog.Logger
}

// New builds a Server with every route registered.
func New(services Services, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, services: services, log: log}
	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))
	e.Use(middleware.BodyLimit("256K"))
	s.registerRoutes()
	return s
}

// Handler returns the router wrapped in the CORS policy.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{echo.HeaderXRequestID},
	})
	return c.Handler(s.echo)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// AddrFromEnv reads FITPLAN_PORT, then PORT, defaulting to 8080.
func AddrFromEnv() string {
	port := os.Getenv("FITPLAN_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultPort
	}
	return ":" + port
}
