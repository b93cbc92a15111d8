package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wanderlust-travel/internal/config"
	"wanderlust-travel/internal/server"
	"wanderlust-travel/internal/storage"
)

func main() {
	cfg := config.LoadConfig()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Error initializing storage: %v", err)
	}
	defer store.Close()

	srv := server.NewServer(cfg, store)

	// Create a listener on the desired address
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Fatalf("Error creating listener: %v", err)
	}

	// Channel to receive errors from the server
	errChan := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Printf("Server started on %s (backend: %s)...", srv.Addr, cfg.StoreBackend)
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server encountered an error: %v", err)
			errChan <- err
		}
	}()

	// Set up channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Wait for an interrupt or server error
	select {
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	case sig := <-stop:
		// Received an interrupt signal, shut down gracefully
		log.Printf("Received signal %s, initiating graceful shutdown", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shut down the server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}

// newStore selects the storage backend from configuration. The in-memory
// store ships with seeded catalogue data; the postgres store runs its
// migrations on startup.
func newStore(cfg *config.Config) (storage.Service, error) {
	switch cfg.StoreBackend {
	case "postgres":
		return storage.NewPostgresStore(cfg)
	default:
		return storage.NewMemoryStore(), nil
	}
}
