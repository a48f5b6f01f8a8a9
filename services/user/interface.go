package user

import (
	"context"

	userRepo "fitpulse/database/repository/user"
	"fitpulse/models"
)

// UserService handles account lifecycle and authentication.
type UserService interface {
	Register(ctx context.Context, reg models.UserRegistration) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, creds models.UserCredentials) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, update models.User) (*models.User, error)
	RevokeToken(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
