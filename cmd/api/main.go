package main

import (
	"aluxim-mail-relay/config"
	v1 "aluxim-mail-relay/internal/delivery/http/v1"
	"aluxim-mail-relay/internal/usecase"
	"aluxim-mail-relay/pkg/email"
	"aluxim-mail-relay/pkg/logger"
	"aluxim-mail-relay/pkg/validation"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting mail relay", "port", cfg.Port, "provider", cfg.EmailProvider)

	// 3. Setup Email Gateway
	sender, err := email.NewSender(cfg)
	if err != nil {
		logger.Log.Error("Failed to set up email gateway", "error", err)
		os.Exit(1)
	}

	// 4. Setup UseCases
	validate := validation.New()
	contactUC := usecase.NewContactUsecase(sender, validate, cfg)
	applicationUC := usecase.NewApplicationUsecase(sender, validate, cfg)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:     contactUC,
		ApplicationUC: applicationUC,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server running", "addr", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
