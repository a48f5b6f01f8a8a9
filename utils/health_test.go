package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthStatusHealthy(t *testing.T) {
	s := HealthStatus{
		Mongo:           true,
		AuthCache:       true,
		DisclaimerStore: true,
		AIContext:       true,
		CheckedAt:       time.Now(),
	}
	assert.True(t, s.Healthy())

	s.DisclaimerStore = false
	assert.False(t, s.Healthy(), "one degraded store degrades the snapshot")

	assert.False(t, HealthStatus{}.Healthy(), "zero-value snapshot is unhealthy")
}

func TestRedisHealthyNilClient(t *testing.T) {
	assert.False(t, redisHealthy(context.Background(), nil))
}
