// cmd/verify/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/snackshop-backend/internal/config"
	"github.com/your-org/snackshop-backend/internal/pkg/sms"
	"github.com/your-org/snackshop-backend/internal/verification"
)

// The verification relay is a small standalone service. It keeps no
// database; codes live in memory and vanish on restart.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	var sender sms.Sender
	if cfg.External.SMS.AccountSID != "" && cfg.External.SMS.AuthToken != "" {
		sender = sms.NewTwilioClient(cfg, logger)
		logger.Info("✅ Twilio SMS sender configured")
	} else {
		sender = &sms.LogSender{Logger: logger}
		logger.Warn("No Twilio credentials, codes are logged instead of sent")
	}

	service := verification.NewService(sender, logger, cfg.Relay.CodeExpiry)
	handler := verification.NewHandler(service)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC()})
	})
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         ":" + cfg.Relay.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("🚀 Verification relay starting on port %s", cfg.Relay.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start verification relay: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("👋 Shutting down verification relay...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Failed to shutdown gracefully: %v", err)
	}

	logger.Info("✅ Verification relay stopped")
}
