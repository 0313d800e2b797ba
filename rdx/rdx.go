package rdx

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect opens a Redis connection from REDIS_URL. Returns nil when the
// variable is unset so callers can fall back to in-memory behaviour.
func Connect() *redis.Client {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: os.Getenv("REDIS_PASSWORD"), // Empty if no password
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis at %s not reachable: %v", redisURL, err)
		client.Close()
		return nil
	}

	log.Printf("Connected to Redis at %s", redisURL)
	return client
}
