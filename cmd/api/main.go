// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/coffee-stock-backend/internal/config"
	"github.com/your-org/coffee-stock-backend/internal/domain/stock"
	redisstore "github.com/your-org/coffee-stock-backend/internal/infrastructure/storage/redis"
	sqlitestore "github.com/your-org/coffee-stock-backend/internal/infrastructure/storage/sqlite"
	"github.com/your-org/coffee-stock-backend/internal/interfaces/http"
	"github.com/your-org/coffee-stock-backend/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	appLog := logger.New(cfg)

	// Open the persistence gateway
	gateway, closeGateway, err := newGateway(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer closeGateway()

	// Build the stock service and seed or load the state blob
	stockService := stock.NewService(cfg, gateway, appLog)
	if err := stockService.Bootstrap(); err != nil {
		log.Fatalf("Failed to bootstrap state: %v", err)
	}

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, stockService, appLog)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}

// newGateway opens the configured storage driver and health-checks it.
func newGateway(cfg *config.Config) (stock.Gateway, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		store, err := redisstore.NewStore(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := store.Health(); err != nil {
			return nil, nil, err
		}
		log.Println("✅ Redis storage ready")
		return store, func() { store.Close() }, nil

	default:
		store, err := sqlitestore.NewStore(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := store.Health(); err != nil {
			return nil, nil, err
		}
		log.Printf("✅ SQLite storage ready at %s", cfg.Storage.SQLitePath)
		return store, func() { store.Close() }, nil
	}
}
