package user

import (
	"context"
	"fmt"
	"time"

	"fitpulse/models"
	"fitpulse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Register creates a new account and signs the user in. Self-service signup
// only ever creates "user" accounts; coach/medical/admin roles are provisioned
// by admins through profile updates.
func (s *DefaultUserService) Register(ctx context.Context, reg models.UserRegistration) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if existing, err := s.Repo.GetByEmail(ctx, reg.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("user: failed to hash password: %w", err)
	}

	newUser := models.User{
		ID:           uuid.New().String(),
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		Status:       models.ClientStatusTrial,
		Goal:         reg.Goal,
	}
	if err := s.Repo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("user: failed to create user: %w", err)
	}

	token, err := s.issueToken(ctx, &newUser)
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", zap.String("userID", newUser.ID))
	return &models.AuthResponse{Token: token, User: newUser}, nil
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, creds models.UserCredentials) (*models.AuthResponse, error) {
	account, err := s.Repo.GetByEmail(ctx, creds.Email)
	if err != nil || account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, account)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *account}, nil
}

// issueToken generates a JWT, stores its hash on the user document and primes
// the Redis auth cache. A cache failure is not fatal; auth falls back to Mongo.
func (s *DefaultUserService) issueToken(ctx context.Context, account *models.User) (string, error) {
	token, err := utils.GenerateToken(account.ID, account.Email, string(account.Role), tokenTTL)
	if err != nil {
		return "", fmt.Errorf("user: failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, account.ID, tokenHash); err != nil {
		return "", fmt.Errorf("user: failed to store token hash: %w", err)
	}

	if authCache := utils.GetAuthCacheClient(); authCache != nil {
		if err := authCache.Set(ctx, utils.AuthCachePrefix+account.ID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to prime auth cache", zap.String("userID", account.ID), zap.Error(err))
		}
	}

	return token, nil
}

// RevokeToken invalidates the user's current token everywhere.
func (s *DefaultUserService) RevokeToken(ctx context.Context, id string) error {
	if err := s.Repo.SetTokenHash(ctx, id, ""); err != nil {
		return fmt.Errorf("user: failed to clear token hash: %w", err)
	}
	if authCache := utils.GetAuthCacheClient(); authCache != nil {
		if err := authCache.Del(ctx, utils.AuthCachePrefix+id).Err(); err != nil {
			utils.GetLogger().Warn("failed to evict auth cache entry", zap.String("userID", id), zap.Error(err))
		}
	}
	return nil
}
