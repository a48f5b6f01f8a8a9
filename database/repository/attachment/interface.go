package attachmentRepo

import (
	"context"

	"fitpulse/models"
)

// AttachmentRepository stores client attachment records.
type AttachmentRepository interface {
	Create(ctx context.Context, record models.AttachmentRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.AttachmentRecord, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.AttachmentRecord, error)
	GetGroupedByClient(ctx context.Context, clientIDs []string) (map[string][]models.AttachmentRecord, error)
	SetVisibility(ctx context.Context, id string, visibleToCoaches bool) error
	Delete(ctx context.Context, id string) error
}
