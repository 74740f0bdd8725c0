package main

import (
	"log"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/OlDeuS1/Dormitory-Management-System/internal/config"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/gateway"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/logger"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/metrics"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/server"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/version"
)

const serviceName = "api-gateway"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(serviceName)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	slogLogger := logger.NewWithServiceContext(serviceName, version.Version)
	slog.SetDefault(slogLogger)
	slogLogger.Info("config loaded", "env", cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	upstreams := make([]gateway.Upstream, 0, 3)
	for _, entry := range []struct {
		prefix, baseURL string
	}{
		{"/students", cfg.Gateway.StudentServiceURL},
		{"/rooms", cfg.Gateway.RoomServiceURL},
		{"/bookings", cfg.Gateway.BookingServiceURL},
	} {
		up, err := gateway.ParseUpstream(entry.prefix, entry.baseURL)
		if err != nil {
			log.Fatalf("invalid upstream config: %v", err)
		}
		slogLogger.Info("upstream registered", "prefix", entry.prefix, "target", entry.baseURL)
		upstreams = append(upstreams, up)
	}

	g := gateway.New(slogLogger,
		time.Duration(cfg.Gateway.UpstreamTimeout)*time.Second, upstreams...)

	router := server.NewRouter(serviceName, slogLogger, metrics.New(serviceName))
	router.NoRoute(g.Handler())

	srv := server.New(cfg.Server, router, slogLogger)
	if err := srv.RunUntilSignal(10 * time.Second); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
