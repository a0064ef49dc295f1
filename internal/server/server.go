package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/campushub/internal/bootstrap"
	"github.com/campushub/campushub/internal/config"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// Server represents the HTTP server and its dependencies
type Server struct {
	config     *config.Config
	router     *gin.Engine
	dbPool     *pgxpool.Pool
	httpServer *http.Server
}

// NewServer creates and configures a new server instance
func NewServer() (*Server, error) {
	cfg, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	database, err := bootstrap.SetupDatabase(cfg)
	if err != nil {
		return nil, err
	}

	deps, err := bootstrap.BuildDependencies(cfg, database, database.Pool)
	if err != nil {
		database.Pool.Close()
		return nil, err
	}

	router := bootstrap.SetupRouter(cfg, deps)

	// Serve uploaded files from local storage
	if err := os.MkdirAll(cfg.Server.StoragePath, 0o755); err != nil {
		database.Pool.Close()
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	router.Static("/uploads", cfg.Server.StoragePath)

	return &Server{
		config: cfg,
		router: router,
		dbPool: database.Pool,
		httpServer: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}, nil
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().Str("port", s.config.Server.Port).Str("mode", s.config.Server.Mode).Msg("Starting HTTP server")
		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
		return s.Shutdown()
	}
}

// Shutdown gracefully stops the HTTP server and closes the database pool
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.dbPool.Close()
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	s.dbPool.Close()
	logger.Info().Msg("Server stopped")
	return nil
}
