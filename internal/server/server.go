// Package server owns the HTTP lifecycle shared by all four binaries: router
// assembly with the common middleware chain, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/OlDeuS1/Dormitory-Management-System/internal/config"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/health"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/metrics"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/middleware"
)

// NewRouter assembles the gin engine every service starts from: recovery,
// request ids, request logging, CORS, metrics, /metrics and /health.
func NewRouter(serviceName string, logger *slog.Logger, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		AllowCredentials: false,
	}))
	router.Use(m.Middleware())

	router.GET("/metrics", m.Handler())
	health.NewHandler(serviceName).RegisterRoutes(router)

	return router
}

type Server struct {
	http   *http.Server
	logger *slog.Logger
}

func New(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Port),
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Run() error {
	s.logger.Info("server starting", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.http.Shutdown(ctx)
}

// RunUntilSignal serves until SIGINT/SIGTERM arrives, then drains in-flight
// requests within shutdownTimeout.
func (s *Server) RunUntilSignal(shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server exited gracefully")
	return nil
}
