package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is a point-in-time snapshot of the backing stores, one flag per
// Redis concern plus Mongo.
type HealthStatus struct {
	Mongo           bool      `json:"mongo"`
	AuthCache       bool      `json:"authCache"`
	DisclaimerStore bool      `json:"disclaimerStore"`
	AIContext       bool      `json:"aiContext"`
	CheckedAt       time.Time `json:"checkedAt"`
}

// Healthy reports whether every backing store answered its last ping.
func (s HealthStatus) Healthy() bool {
	return s.Mongo && s.AuthCache && s.DisclaimerStore && s.AIContext
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings Mongo and the per-concern Redis clients on the
// given interval and keeps the latest snapshot in memory for the health
// endpoint. The first check runs immediately so the endpoint never serves a
// zero-value snapshot for a full interval after boot.
func StartHealthMonitor(mongoClient *mongo.Client, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ctx := context.Background()
		for {
			snapshot := HealthStatus{
				Mongo:           mongoClient != nil && mongoClient.Ping(ctx, nil) == nil,
				AuthCache:       redisHealthy(ctx, AuthCacheClient),
				DisclaimerStore: redisHealthy(ctx, DisclaimerClient),
				AIContext:       redisHealthy(ctx, AIContextClient),
				CheckedAt:       time.Now(),
			}

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()

			<-ticker.C
		}
	}()
}

func redisHealthy(ctx context.Context, client *redis.Client) bool {
	return client != nil && client.Ping(ctx).Err() == nil
}
