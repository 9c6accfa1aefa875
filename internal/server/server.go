package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/ukfiscal/lifetax/internal/calculation"
)

// Config holds the HTTP server settings, read from the environment.
type Config struct {
	Port         string
	LogLevel     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewConfig reads the server configuration from environment variables,
// falling back to defaults.
func NewConfig() Config {
	return Config{
		Port:         getEnv("LIFETAX_PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewLogger builds the process logger from the configured level.
func NewLogger(cfg Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// Server exposes the simulation engine over HTTP.
type Server struct {
	cfg    Config
	engine *calculation.Engine
	logger *logrus.Logger
	router chi.Router
}

// New wires the router. The engine also logs through the server's logger.
func New(cfg Config, engine *calculation.Engine, logger *logrus.Logger) *Server {
	s := &Server{cfg: cfg, engine: engine, logger: logger}
	engine.SetLogger(logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(RequestLogger(logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/reforms", s.handleReforms)
		r.Get("/rules", s.handleRules)
		r.Post("/simulate", s.handleSimulate)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Start serves until the context is cancelled, then drains in-flight
// requests.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
