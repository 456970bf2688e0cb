package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/middleware"
	"inkwell/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		middleware.Logger.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		middleware.Logger.Error("Failed to initialize server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	go func() {
		middleware.Logger.Info("Starting server", slog.String("port", cfg.Port))
		if err := srv.Start(); err != nil {
			middleware.Logger.Error("Server stopped", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	middleware.Logger.Info("Shutting down server")
	if err := srv.Shutdown(); err != nil {
		middleware.Logger.Error("Shutdown error", slog.String("error", err.Error()))
	}
	cache.Close()
	middleware.Logger.Info("Server exited")
}
