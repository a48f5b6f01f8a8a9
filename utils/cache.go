// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"fitpulse/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// DisclaimerClient is the dedicated client for persisted disclaimer acceptance.
	DisclaimerClient *redis.Client
	// AIContextClient is the dedicated client for AI conversation context.
	AIContextClient *redis.Client
)

// InitRedis initializes all Redis clients eagerly so startup fails fast.
func InitRedis() {
	GetAuthCacheClient()
	GetDisclaimerClient()
	GetAIContextClient()
}

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetDisclaimerClient returns the Redis client backing the disclaimer acceptance store.
func GetDisclaimerClient() *redis.Client {
	if DisclaimerClient == nil {
		DisclaimerClient = newClient(config.AppConfig.RedisDisclaimerDB)
	}
	return DisclaimerClient
}

// GetAIContextClient returns the Redis client for AI conversation context.
func GetAIContextClient() *redis.Client {
	if AIContextClient == nil {
		AIContextClient = newClient(config.AppConfig.RedisAIContextDB)
	}
	return AIContextClient
}
