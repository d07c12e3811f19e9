package main

import (
	"contact-mailer-backend/config"
	_ "contact-mailer-backend/docs" // Important for Swagger
	v1 "contact-mailer-backend/internal/delivery/http/v1"
	"contact-mailer-backend/internal/usecase"
	"contact-mailer-backend/pkg/email"
	"contact-mailer-backend/pkg/logger"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// @title           Contact Mailer API
// @version         1.0
// @description     Relays website contact form submissions to the team inbox over SMTP.
// @host            localhost:3000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting contact mailer", "port", cfg.Port)

	// 3. Setup UseCases
	// A new SMTP transport is dialed for every submission
	contactUC := usecase.NewContactUsecase(cfg.Mail, email.NewSMTPTransport)

	// 4. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 5. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
