package database

import (
	"context"
	"log"
	"time"

	config "github.com/fitstudio/backend/configs"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from REDIS_ADDR / REDIS_PASSWORD /
// REDIS_DB. Returns nil when the server is unreachable so callers can
// degrade gracefully (caching disabled, tokens fetched per call).
func NewRedisClient() *redis.Client {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unreachable at %s, continuing without cache: %v", addr, err)
		return nil
	}

	log.Println("✅ Redis connected successfully")
	return client
}
