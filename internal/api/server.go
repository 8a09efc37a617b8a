package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wearlytic/catalog/internal/config"
	"github.com/wearlytic/catalog/internal/logger"
)

// Default timeout values.
const (
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = 60 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Server wraps the HTTP server with lifecycle management.
type Server struct {
	router *gin.Engine
	server *http.Server
	config *config.Config
	logger logger.Logger
}

// NewServer builds the gin router with standard middleware and routes.
func NewServer(handler *Handler, cfg *config.Config, log logger.Logger) *Server {
	if cfg.Service.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(RecoveryMiddleware(log))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(log))
	router.Use(CORSMiddleware(&cfg.CORS))

	SetupRoutes(router, handler)

	return &Server{
		router: router,
		server: &http.Server{
			Handler:      router,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
			IdleTimeout:  defaultIdleTimeout,
		},
		config: cfg,
		logger: log,
	}
}

// Router returns the underlying gin engine. Used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run binds a port from the candidate list, serves until SIGINT/SIGTERM,
// then shuts down gracefully.
func (s *Server) Run() error {
	ports := CandidatePorts(s.config.Service.Port, s.config.Service.PortAttempts)
	listener, port, err := ListenWithFallback(s.config.Service.Host, ports, s.logger)
	if err != nil {
		return fmt.Errorf("bind server port: %w", err)
	}

	s.logger.Info("HTTP server listening",
		logger.String("service", s.config.Service.Name),
		logger.String("version", s.config.Service.Version),
		logger.Int("port", port),
	)

	errCh := make(chan error, 1)
	go func() {
		if serveErr := s.server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
		close(errCh)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case serveErr := <-errCh:
		if serveErr != nil {
			return fmt.Errorf("server error: %w", serveErr)
		}
		return nil
	case sig := <-sigCh:
		s.logger.Info("Shutdown signal received", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	if shutdownErr := s.server.Shutdown(ctx); shutdownErr != nil {
		return fmt.Errorf("server shutdown: %w", shutdownErr)
	}

	s.logger.Info("HTTP server stopped gracefully")
	return nil
}
