package coaching

import (
	"context"
	"fmt"
	"time"

	"fitpulse/config"
	"fitpulse/models"
	"fitpulse/services/visibility"
	"fitpulse/utils"

	"go.uber.org/zap"
)

// ClientAttachments returns the attachments of clientID visible to the
// viewer. Both permission layers (assignment membership and the per-record
// VisibleToCoaches flag) are enforced by the resolver; no permission means an
// empty list, indistinguishable from a client without attachments.
func (s *DefaultCoachingService) ClientAttachments(ctx context.Context, viewer models.Viewer, clientID string) ([]models.AttachmentRecord, error) {
	assignments, err := s.AssignmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("coaching: failed to load assignments: %w", err)
	}

	records, err := s.AttachmentRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("coaching: failed to load attachments: %w", err)
	}

	byClient := map[string][]models.AttachmentRecord{clientID: records}
	return visibility.ResolveAttachments(viewer, clientID, assignments, byClient), nil
}

// RosterAttachments returns every attachment the viewer may see, grouped by
// client. The roster is resolved first, then attachments for all visible
// clients are fetched in one query and filtered per client with the same two
// layers as a single-client listing. Clients without visible attachments are
// omitted from the result.
func (s *DefaultCoachingService) RosterAttachments(ctx context.Context, viewer models.Viewer, filters models.RosterFilters) (map[string][]models.AttachmentRecord, error) {
	assignments, err := s.AssignmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("coaching: failed to load assignments: %w", err)
	}

	clients, err := s.UserRepo.GetAllByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("coaching: failed to load clients: %w", err)
	}
	roster := make([]models.RosterRecord, 0, len(clients))
	for _, client := range clients {
		roster = append(roster, models.RosterRecordFromUser(client))
	}

	visible := visibility.ResolveVisibleClients(viewer, assignments, roster, filters)
	ids := make([]string, 0, len(visible))
	for _, record := range visible {
		ids = append(ids, record.ID)
	}

	grouped, err := s.AttachmentRepo.GetGroupedByClient(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("coaching: failed to load attachments: %w", err)
	}

	out := make(map[string][]models.AttachmentRecord, len(ids))
	for _, id := range ids {
		records := visibility.ResolveAttachments(viewer, id, assignments, grouped)
		if len(records) > 0 {
			out[id] = records
		}
	}
	return out, nil
}

// UploadAttachment stores the file in Cloudinary and records it against the
// client. Only the owning client or an admin may upload; new attachments start
// private (VisibleToCoaches false) until the owner shares them. Sensitive
// files (bloodwork, medical documents) are encrypted at rest when an
// encryption key is configured.
func (s *DefaultCoachingService) UploadAttachment(ctx context.Context, viewer models.Viewer, clientID, localFilePath, title string, sensitive bool) (*models.AttachmentRecord, error) {
	if !canMutateClientRecords(viewer, clientID) {
		return nil, ErrNotAllowed
	}

	destFolder := "attachments/" + clientID
	encrypted := sensitive && config.AppConfig.AttachmentEncryptionKey != ""

	var publicID string
	var err error
	if encrypted {
		publicID, err = s.Storage.UploadEncryptedFile(ctx, localFilePath, destFolder, config.AppConfig.AttachmentEncryptionKey)
	} else {
		publicID, err = s.Storage.UploadFile(ctx, localFilePath, destFolder)
	}
	if err != nil {
		return nil, fmt.Errorf("coaching: failed to upload attachment: %w", err)
	}

	// Encrypted files get a short-lived signed URL; ordinary uploads are
	// served from the public CDN path.
	var url string
	if encrypted {
		url, err = s.Storage.GetSecureDownloadURL(ctx, "image", publicID, 24*time.Hour)
	} else {
		url, err = s.Storage.GetDownloadURL(ctx, "image", publicID)
	}
	if err != nil {
		return nil, fmt.Errorf("coaching: failed to build attachment URL: %w", err)
	}

	record := models.AttachmentRecord{
		OwnerClientID:    clientID,
		Title:            title,
		URL:              url,
		PublicID:         publicID,
		VisibleToCoaches: false,
	}
	id, err := s.AttachmentRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("coaching: failed to store attachment record: %w", err)
	}
	record.ID = id

	utils.GetLogger().Info("attachment uploaded",
		zap.String("clientID", clientID),
		zap.String("attachmentID", id))
	return &record, nil
}

// SetAttachmentVisibility flips the VisibleToCoaches flag. Only the owning
// client or an admin may do this.
func (s *DefaultCoachingService) SetAttachmentVisibility(ctx context.Context, viewer models.Viewer, attachmentID string, visible bool) (*models.AttachmentRecord, error) {
	record, err := s.AttachmentRepo.GetByID(ctx, attachmentID)
	if err != nil || record == nil {
		return nil, ErrNotFound
	}

	if !canMutateClientRecords(viewer, record.OwnerClientID) {
		return nil, ErrNotAllowed
	}

	if err := s.AttachmentRepo.SetVisibility(ctx, attachmentID, visible); err != nil {
		return nil, fmt.Errorf("coaching: failed to update visibility: %w", err)
	}
	record.VisibleToCoaches = visible
	return record, nil
}

// DeleteAttachment removes the record and its stored file. Only the owning
// client or an admin may delete. The storage delete is best effort.
func (s *DefaultCoachingService) DeleteAttachment(ctx context.Context, viewer models.Viewer, attachmentID string) error {
	record, err := s.AttachmentRepo.GetByID(ctx, attachmentID)
	if err != nil || record == nil {
		return ErrNotFound
	}

	if !canMutateClientRecords(viewer, record.OwnerClientID) {
		return ErrNotAllowed
	}

	if record.PublicID != "" {
		if err := s.Storage.DeleteFile(ctx, record.PublicID); err != nil {
			utils.GetLogger().Warn("failed to delete stored attachment file",
				zap.String("attachmentID", attachmentID),
				zap.Error(err))
		}
	}

	if err := s.AttachmentRepo.Delete(ctx, attachmentID); err != nil {
		return fmt.Errorf("coaching: failed to delete attachment record: %w", err)
	}
	return nil
}

// canMutateClientRecords allows the owning client and admins. Coaches and
// medical professionals never mutate a client's attachments, whatever their
// assignment says.
func canMutateClientRecords(viewer models.Viewer, ownerClientID string) bool {
	switch viewer.Role {
	case models.RoleAdmin:
		return true
	case models.RoleUser:
		return viewer.ID == ownerClientID
	default:
		return false
	}
}
