package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-bed-booking/internal/config"
	"hospital-bed-booking/internal/database"
	"hospital-bed-booking/internal/events"
	"hospital-bed-booking/internal/handler"
	"hospital-bed-booking/internal/metrics"
	"hospital-bed-booking/internal/middleware"
	"hospital-bed-booking/internal/repository"
	"hospital-bed-booking/internal/service"
	"hospital-bed-booking/pkg/logger"
	"hospital-bed-booking/pkg/utils"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info("Configuration loaded successfully")

	// 2. Initialize token issuer with config
	issuer := utils.NewTokenIssuer(cfg.Auth.SecretKey, cfg.Auth.AccessTokenExpiry, cfg.Auth.RefreshTokenExpiry)

	// 3. Initialize database connection (migrates on startup)
	db := database.Connect(cfg, log)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize metrics and event publisher
	m := metrics.New()
	publisher := events.New(cfg.Kafka)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.WithError(err).Warn("Failed to close event publisher")
		}
	}()
	if len(cfg.Kafka.Brokers) > 0 {
		log.WithField("topic", cfg.Kafka.Topic).Info("Publishing booking events to Kafka")
	}

	// 6. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo, issuer, log)
	hospitalService := service.NewHospitalService(hospitalRepo, userRepo, auditRepo, log)
	bookingService := service.NewBookingService(bookingRepo, hospitalRepo, doctorRepo, auditRepo, publisher, m, log)
	tokenSweeper := service.NewTokenSweeper(userRepo, m, log, cfg.Sweeper.Schedule)

	// 7. Start background token sweeper
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := tokenSweeper.Start(ctx); err != nil {
			log.WithError(err).Error("Token sweeper not started")
		}
	}()

	// 8. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 9. Register handlers and routes
	handler.RegisterRoutes(r, handler.Handlers{
		Auth:     handler.NewAuthHandler(authService, cfg, log),
		Hospital: handler.NewHospitalHandler(hospitalService, log),
		Booking:  handler.NewBookingHandler(bookingService, log),
	}, issuer, m.Handler())

	// 10. Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}
	go func() {
		log.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Cancel background worker context
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	log.Info("Server exited")
}
