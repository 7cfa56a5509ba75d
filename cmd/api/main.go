package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"rentaid/internal/app"
	"rentaid/internal/config"
	"rentaid/internal/database"
	apphttp "rentaid/internal/http"
	"rentaid/internal/http/handlers"
	httpmw "rentaid/internal/http/middleware"
	"rentaid/internal/observability"
	"rentaid/internal/repository/sqlite"
	"rentaid/internal/upload"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewSQLite(database.SQLiteConfig{
		Path:        cfg.DatabasePath,
		BusyTimeout: cfg.DBBusyTimeout,
	})
	defer db.Close()

	uploads, err := upload.NewStore(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	applicationRepo := sqlite.NewApplicationRepository(db)
	intakeService := app.NewIntakeService(applicationRepo, uploads, logger)
	adminService := app.NewAdminService(applicationRepo)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		logger.Info("using redis rate limiter", "addr", cfg.RedisAddr)
	}

	submissionHandler := handlers.NewSubmissionHandler(intakeService, uploads, limiter, cfg.SubmitRateLimit, cfg.SubmitRateWindow)
	adminHandler := handlers.NewAdminHandler(adminService, uploads)
	gate := httpmw.NewAdminGate(cfg.AdminPassword)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		SubmissionHandler: submissionHandler,
		AdminHandler:      adminHandler,
		AdminGate:         gate,
		Logger:            logger,
		RequestTimeout:    cfg.RequestTimeout,
		MaxBodyBytes:      cfg.MaxBodyBytes,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
