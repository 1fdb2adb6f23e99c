// internal/infrastructure/storage/redis/store.go
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/coffee-stock-backend/internal/config"
	"github.com/your-org/coffee-stock-backend/internal/domain/stock"
	"github.com/your-org/coffee-stock-backend/internal/infrastructure/storage"
)

const opTimeout = 3 * time.Second

// Store is the Redis-backed persistence gateway. The gateway contract is
// synchronous get/set, so every call runs under its own short timeout.
type Store struct {
	client *redis.Client
	config *config.Config
}

// NewStore creates a new Redis connection and verifies it.
func NewStore(cfg *config.Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,

		// Connection timeouts
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		// Pool timeouts
		PoolTimeout: 4 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Store{client: client, config: cfg}, nil
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Health checks the Redis connection health.
func (s *Store) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// LoadState returns the stored state blob, or (nil, nil) when none exists.
func (s *Store) LoadState() (*stock.AppState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	blob, err := s.client.Get(ctx, s.config.Storage.StateKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state blob: %w", err)
	}
	return storage.UnmarshalState(blob)
}

// SaveState replaces the stored state blob. No expiration: the blob is the
// system of record for this single-tenant deployment.
func (s *Store) SaveState(state *stock.AppState) error {
	blob, err := storage.MarshalState(state)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.config.Storage.StateKey, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to write state blob: %w", err)
	}
	return nil
}

// Seeded reports whether the seed flag has been set.
func (s *Store) Seeded() (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	count, err := s.client.Exists(ctx, s.config.Storage.SeedFlagKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to read seed flag: %w", err)
	}
	return count > 0, nil
}

// MarkSeeded sets the seed flag.
func (s *Store) MarkSeeded() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.config.Storage.SeedFlagKey, storage.SeedFlagValue, 0).Err(); err != nil {
		return fmt.Errorf("failed to set seed flag: %w", err)
	}
	return nil
}
