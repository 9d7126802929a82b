package utils

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kavinak445/technovate-backend/config"
)

// NewRedisClient connects the fallback store. Returns nil when Redis is
// not configured; callers run without the fallback in that case.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("ℹ️ Redis not configured, fallback store disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis ping failed, fallback store disabled: %v", err)
		return nil
	}

	log.Printf("✅ Redis connected at %s", cfg.RedisAddr)
	return client
}
