// File: services/disclaimer/store.go
package disclaimer

import (
	"context"
	"encoding/json"
	"sync"

	"fitpulse/models"
	"fitpulse/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AcceptanceStore persists the per-user disclaimer acceptance map. The whole
// map is read once when a user's gate is created and written in full on every
// accept.
type AcceptanceStore interface {
	Load(ctx context.Context, userID string) models.Acceptance
	Save(ctx context.Context, userID string, acceptance models.Acceptance) error
}

// RedisAcceptanceStore keeps one JSON blob per user under a single key.
type RedisAcceptanceStore struct {
	client *redis.Client
}

func NewRedisAcceptanceStore(client *redis.Client) *RedisAcceptanceStore {
	return &RedisAcceptanceStore{client: client}
}

// Load returns the stored acceptance map. Any failure (missing key, Redis
// down, corrupt blob) degrades to "nothing accepted". It never fails the
// caller: the gate re-prompts, which is the safe direction for legal notices.
func (s *RedisAcceptanceStore) Load(ctx context.Context, userID string) models.Acceptance {
	logger := utils.GetLogger()

	data, err := s.client.Get(ctx, utils.DisclaimerKeyPrefix+userID).Result()
	if err == redis.Nil {
		return models.Acceptance{}
	}
	if err != nil {
		logger.Warn("disclaimer: failed to load acceptance, treating as unaccepted",
			zap.String("userID", userID), zap.Error(err))
		return models.Acceptance{}
	}

	var acceptance models.Acceptance
	if err := json.Unmarshal([]byte(data), &acceptance); err != nil {
		logger.Warn("disclaimer: corrupt acceptance blob, treating as unaccepted",
			zap.String("userID", userID), zap.Error(err))
		return models.Acceptance{}
	}
	return acceptance
}

// Save writes the full acceptance map. No TTL: acceptance never expires.
func (s *RedisAcceptanceStore) Save(ctx context.Context, userID string, acceptance models.Acceptance) error {
	b, err := json.Marshal(acceptance)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, utils.DisclaimerKeyPrefix+userID, b, 0).Err()
}

// MemoryAcceptanceStore is an in-process store used in tests and as a
// last-resort fallback when Redis is unavailable.
type MemoryAcceptanceStore struct {
	mu   sync.Mutex
	data map[string]models.Acceptance

	// FailSaves makes Save return an error, for exercising swallow paths.
	FailSaves bool
}

func NewMemoryAcceptanceStore() *MemoryAcceptanceStore {
	return &MemoryAcceptanceStore{data: make(map[string]models.Acceptance)}
}

func (s *MemoryAcceptanceStore) Load(ctx context.Context, userID string) models.Acceptance {
	s.mu.Lock()
	defer s.mu.Unlock()

	acceptance := models.Acceptance{}
	for t, v := range s.data[userID] {
		acceptance[t] = v
	}
	return acceptance
}

func (s *MemoryAcceptanceStore) Save(ctx context.Context, userID string, acceptance models.Acceptance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSaves {
		return errSaveUnavailable
	}
	copied := models.Acceptance{}
	for t, v := range acceptance {
		copied[t] = v
	}
	s.data[userID] = copied
	return nil
}
