package user

import (
	"context"
	"fmt"

	"fitpulse/models"
	"fitpulse/utils"

	"go.uber.org/zap"
)

// GetProfile returns the account by id.
func (s *DefaultUserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	account, err := s.Repo.GetByID(ctx, id)
	if err != nil || account == nil {
		return nil, ErrUserNotFound
	}
	return account, nil
}

// UpdateProfile applies a partial update from the non-zero fields of update.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, id string, update models.User) (*models.User, error) {
	logger := utils.GetLogger()

	fields := map[string]any{}
	if update.Username != "" {
		fields["username"] = update.Username
	}
	if update.PhoneNumber != "" {
		fields["phoneNumber"] = update.PhoneNumber
	}
	if update.ProfileImage != "" {
		fields["profileImage"] = update.ProfileImage
	}
	if update.Status != "" {
		fields["status"] = update.Status
	}
	if update.Goal != "" {
		fields["goal"] = update.Goal
	}
	if update.Weight != 0 {
		fields["weight"] = update.Weight
	}
	if update.Height != 0 {
		fields["height"] = update.Height
	}

	if len(fields) == 0 {
		logger.Warn("UpdateProfile called with no updatable fields", zap.String("userID", id))
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("user: failed to update profile: %w", err)
	}
	return s.GetProfile(ctx, id)
}

// Delete removes the account.
func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return ErrUserNotFound
	}
	utils.GetLogger().Info("user deleted", zap.String("userID", id))
	return nil
}
