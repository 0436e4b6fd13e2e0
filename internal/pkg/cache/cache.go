package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anaepietro/wedding-backend/internal/pkg/env"
	"github.com/redis/go-redis/v9"
)

// Cache wraps the redis client used for short-lived response caching
// (currently the public comment list). A failed connection is not fatal:
// callers treat cache misses and cache errors the same way.
type Cache struct {
	client *redis.Client
	ctx    context.Context
}

// SetupCache connects to the redis server configured via CACHE_HOST and
// CACHE_PORT and returns the handle.
func SetupCache() *Cache {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	c := &Cache{client: client, ctx: context.Background()}

	pong, err := client.Ping(c.ctx).Result()
	if err != nil {
		log.Printf("Warning: Could not connect to redis cache: %v", err)
	} else {
		log.Printf("Successfully connected to redis cache: %s", pong)
	}

	return c
}

// Set stores a value with the given key and expiration time.
func (c *Cache) Set(key string, value interface{}, expiration time.Duration) error {
	return c.client.Set(c.ctx, key, value, expiration).Err()
}

// Get retrieves a string value by key.
func (c *Cache) Get(key string) (string, error) {
	return c.client.Get(c.ctx, key).Result()
}

// Delete removes a value by key.
func (c *Cache) Delete(key string) error {
	return c.client.Del(c.ctx, key).Err()
}
