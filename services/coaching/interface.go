package coaching

import (
	"context"

	assignmentRepo "fitpulse/database/repository/assignment"
	attachmentRepo "fitpulse/database/repository/attachment"
	userRepo "fitpulse/database/repository/user"
	"fitpulse/models"
	"fitpulse/services/storage"
)

// CoachingService backs the roster and attachment endpoints. Reads are
// filtered through the visibility resolver; a viewer without permission gets
// empty results, never an error. Writes (visibility toggles, uploads,
// assignment management) are authenticated mutations and do error.
type CoachingService interface {
	VisibleClients(ctx context.Context, viewer models.Viewer, filters models.RosterFilters, professionalID string) ([]models.RosterRecord, error)
	ClientAttachments(ctx context.Context, viewer models.Viewer, clientID string) ([]models.AttachmentRecord, error)
	RosterAttachments(ctx context.Context, viewer models.Viewer, filters models.RosterFilters) (map[string][]models.AttachmentRecord, error)
	UploadAttachment(ctx context.Context, viewer models.Viewer, clientID, localFilePath, title string, sensitive bool) (*models.AttachmentRecord, error)
	SetAttachmentVisibility(ctx context.Context, viewer models.Viewer, attachmentID string, visible bool) (*models.AttachmentRecord, error)
	DeleteAttachment(ctx context.Context, viewer models.Viewer, attachmentID string) error
	AssignClient(ctx context.Context, professionalID, clientID string) error
	UnassignClient(ctx context.Context, professionalID, clientID string) error
	Roster(ctx context.Context, professionalID string) (*models.Assignment, error)
	ReplaceRoster(ctx context.Context, professionalID string, clientIDs []string) (*models.Assignment, error)
}

// DefaultCoachingService is the production implementation over Mongo
// repositories and Cloudinary storage.
type DefaultCoachingService struct {
	UserRepo       userRepo.UserRepository
	AssignmentRepo assignmentRepo.AssignmentRepository
	AttachmentRepo attachmentRepo.AttachmentRepository
	Storage        storage.StorageService
}
