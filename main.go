package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/blub-trading/board-proxy/config"
	"github.com/blub-trading/board-proxy/core"
)

func main() {
	// Load configuration; a missing file runs on defaults
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("Error loading config:", err)
		}
		log.Println("No config.yaml found, using defaults")
		cfg = config.DefaultConfig()
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, stopping services...")
		cancel()
	}()

	// Create and register all services
	registry, err := core.Setup(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to set up services:", err)
	}

	if err := registry.StartAll(ctx); err != nil {
		log.Fatal("Failed to start services:", err)
	}

	<-ctx.Done()

	registry.StopAll()
	log.Println("All services stopped")
}
