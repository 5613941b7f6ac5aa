// Package server serves date-picker widgets over HTTP. Every visitor gets an
// in-memory picker session; nothing outlives the process.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/username/date-picker/internal/config"
	"github.com/username/date-picker/internal/picker"
	"github.com/username/date-picker/pkg/random"
	"go.uber.org/zap"
)

// Server is the HTTP front-end
type Server struct {
	echo            *echo.Echo
	sessions        *registry
	defaults        config.PickerConfig
	addr            string
	shutdownTimeout time.Duration
	clock           func() time.Time
	logger          *zap.Logger
}

// Option customizes a Server
type Option func(*Server)

// WithClock overrides the wall clock used for "today" and session expiry
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// New creates a new Server from configuration
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		defaults:        cfg.Picker,
		addr:            cfg.Server.Addr,
		shutdownTimeout: cfg.Server.GetShutdownTimeout(),
		clock:           time.Now,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sessions = newRegistry(cfg.Server.GetSessionTTL(), s.clock, logger)

	renderer, err := newTemplateRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("Request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	s.echo = e
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.echo.GET("/", s.handleIndex)
	s.echo.POST("/pickers", s.handleCreate)
	s.echo.GET("/pickers/:id", s.handleShow)
	s.echo.GET("/api/pickers/:id", s.handleState)
	s.echo.GET("/pickers/:id/disabled.ics", s.handleDisabledFeed)

	s.echo.POST("/pickers/:id/prev", s.handlePrev)
	s.echo.POST("/pickers/:id/next", s.handleNext)
	s.echo.POST("/pickers/:id/select", s.handleSelect)
	s.echo.POST("/pickers/:id/boundary", s.handleBoundary)
	s.echo.POST("/pickers/:id/confirm", s.handleConfirm)
	s.echo.POST("/pickers/:id/reset", s.handleReset)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// newPicker builds a picker from configured defaults overridden by the request
func (s *Server) newPicker(start, end, excluded string) (*picker.Picker, error) {
	opts := picker.Options{
		StartDate:       s.defaults.StartDate,
		EndDate:         s.defaults.EndDate,
		ExcludedDates:   s.defaults.ExcludedDates,
		ExclusionFile:   s.defaults.ExclusionFile,
		DefaultSpanDays: s.defaults.DefaultSpanDays,
		Clock:           s.clock,
		// one source per session: *rand.Rand is not safe for concurrent use
		Random: random.NewSource(s.defaults.RandomSeed),
		Logger: s.logger,
	}
	if start != "" {
		opts.StartDate = start
	}
	if end != "" {
		opts.EndDate = end
	}
	if excluded != "" {
		opts.ExcludedDates = excluded
	}

	return picker.New(opts)
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server started", zap.String("addr", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Shutting down", zap.Int("sessions", s.sessions.len()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}
