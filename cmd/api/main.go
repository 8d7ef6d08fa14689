package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"blogAPI/cmd/app"
	"blogAPI/internal/config"
	handlers "blogAPI/internal/handler"
	"blogAPI/internal/router"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()
	logger := app.NewLogger(cfg.Log)

	if strings.TrimSpace(cfg.JWTSecretKey) == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, repo, services := app.App(ctx, cfg, logger)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router.New(handler, services.Auth, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Starting the server
	go func() {
		logger.Infof("server running on port %d", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}
}
