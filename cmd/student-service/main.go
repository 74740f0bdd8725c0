package main

import (
	"log"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/OlDeuS1/Dormitory-Management-System/internal/config"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/logger"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/metrics"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/server"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/store"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/student"
	"github.com/OlDeuS1/Dormitory-Management-System/internal/version"
)

const serviceName = "student-service"

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
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

	router := server.NewRouter(serviceName, slogLogger, metrics.New(serviceName))

	studentService := student.NewService(store.New(student.SeedData()...))
	student.NewHandler(studentService, slogLogger).RegisterRoutes(router)

	srv := server.New(cfg.Server, router, slogLogger)
	if err := srv.RunUntilSignal(10 * time.Second); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
