package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"backup-admin/internal/app"
)

func main() {
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	log.SetOutput(os.Stderr)

	service, err := app.NewService()
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- service.Start()
	}()

	// Drain in-flight requests on SIGINT/SIGTERM, bounded by the
	// configured shutdown timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start service: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received %s, shutting down...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), service.ShutdownTimeout())
		defer cancel()
		if err := service.Shutdown(ctx); err != nil {
			log.Fatalf("Failed to shut down cleanly: %v", err)
		}
	}
}
