package userRepo

import (
	"context"

	"fitpulse/models"
)

// UserRepository abstracts persistence for platform accounts.
type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllByRole(ctx context.Context, role models.Role) ([]models.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	Delete(ctx context.Context, id string) error
}
