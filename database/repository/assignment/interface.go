package assignmentRepo

import (
	"context"

	"fitpulse/models"
)

// AssignmentRepository stores the professional→client mappings used by the
// visibility resolver.
type AssignmentRepository interface {
	GetAll(ctx context.Context) ([]models.Assignment, error)
	GetByProfessionalID(ctx context.Context, professionalID string) (*models.Assignment, error)
	Upsert(ctx context.Context, assignment models.Assignment) error
	AddClient(ctx context.Context, professionalID, clientID string) error
	RemoveClient(ctx context.Context, professionalID, clientID string) error
}
