package coaching

import (
	"context"
	"testing"
	"time"

	"fitpulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user models.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, ErrNotFound
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, ErrNotFound
}
func (f *fakeUserRepo) GetAllByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}
func (f *fakeUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return nil
}
func (f *fakeUserRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error                  { return nil }

type fakeAssignmentRepo struct {
	assignments []models.Assignment
}

func (f *fakeAssignmentRepo) GetAll(ctx context.Context) ([]models.Assignment, error) {
	return f.assignments, nil
}
func (f *fakeAssignmentRepo) GetByProfessionalID(ctx context.Context, professionalID string) (*models.Assignment, error) {
	for i := range f.assignments {
		if f.assignments[i].ProfessionalID == professionalID {
			return &f.assignments[i], nil
		}
	}
	return nil, nil
}
func (f *fakeAssignmentRepo) Upsert(ctx context.Context, assignment models.Assignment) error {
	for i := range f.assignments {
		if f.assignments[i].ProfessionalID == assignment.ProfessionalID {
			f.assignments[i] = assignment
			return nil
		}
	}
	f.assignments = append(f.assignments, assignment)
	return nil
}
func (f *fakeAssignmentRepo) AddClient(ctx context.Context, professionalID, clientID string) error {
	for i := range f.assignments {
		if f.assignments[i].ProfessionalID == professionalID {
			f.assignments[i].ClientIDs = append(f.assignments[i].ClientIDs, clientID)
			return nil
		}
	}
	f.assignments = append(f.assignments, models.Assignment{ProfessionalID: professionalID, ClientIDs: []string{clientID}})
	return nil
}
func (f *fakeAssignmentRepo) RemoveClient(ctx context.Context, professionalID, clientID string) error {
	return nil
}

type fakeAttachmentRepo struct {
	records []models.AttachmentRecord
}

func (f *fakeAttachmentRepo) Create(ctx context.Context, record models.AttachmentRecord) (string, error) {
	if record.ID == "" {
		record.ID = "gen-1"
	}
	f.records = append(f.records, record)
	return record.ID, nil
}
func (f *fakeAttachmentRepo) GetByID(ctx context.Context, id string) (*models.AttachmentRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, ErrNotFound
}
func (f *fakeAttachmentRepo) GetByClientID(ctx context.Context, clientID string) ([]models.AttachmentRecord, error) {
	var out []models.AttachmentRecord
	for _, r := range f.records {
		if r.OwnerClientID == clientID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeAttachmentRepo) GetGroupedByClient(ctx context.Context, clientIDs []string) (map[string][]models.AttachmentRecord, error) {
	grouped := make(map[string][]models.AttachmentRecord)
	for _, id := range clientIDs {
		recs, _ := f.GetByClientID(ctx, id)
		if len(recs) > 0 {
			grouped[id] = recs
		}
	}
	return grouped, nil
}
func (f *fakeAttachmentRepo) SetVisibility(ctx context.Context, id string, visibleToCoaches bool) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].VisibleToCoaches = visibleToCoaches
			return nil
		}
	}
	return ErrNotFound
}
func (f *fakeAttachmentRepo) Delete(ctx context.Context, id string) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type fakeStorage struct {
	deleted []string
}

func (*fakeStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	return "public-id", nil
}
func (*fakeStorage) UploadEncryptedFile(ctx context.Context, localFilePath, destFolder, encryptionKey string) (string, error) {
	return "public-id-enc", nil
}
func (s *fakeStorage) DeleteFile(ctx context.Context, publicID string) error {
	s.deleted = append(s.deleted, publicID)
	return nil
}
func (*fakeStorage) GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error) {
	return "https://cdn.example.com/" + publicID, nil
}
func (*fakeStorage) GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	return "https://cdn.example.com/signed/" + publicID, nil
}

func newTestService() *DefaultCoachingService {
	return &DefaultCoachingService{
		UserRepo: &fakeUserRepo{users: []models.User{
			{ID: "u1", Username: "Ada Moyo", Email: "ada@example.com", Role: models.RoleUser, Status: models.ClientStatusActive},
			{ID: "u2", Username: "Ben Kip", Email: "ben@example.com", Role: models.RoleUser, Status: models.ClientStatusTrial},
			{ID: "u3", Username: "Cara Otieno", Email: "cara@example.com", Role: models.RoleUser, Status: models.ClientStatusActive},
			{ID: "c1", Username: "Coach Dan", Email: "dan@example.com", Role: models.RoleCoach, Status: models.ClientStatusActive},
		}},
		AssignmentRepo: &fakeAssignmentRepo{assignments: []models.Assignment{
			{ProfessionalID: "c1", ClientIDs: []string{"u1", "u3"}},
		}},
		AttachmentRepo: &fakeAttachmentRepo{records: []models.AttachmentRecord{
			{ID: "a1", OwnerClientID: "u1", Title: "Bloodwork Q1", VisibleToCoaches: true},
			{ID: "a2", OwnerClientID: "u1", Title: "Private journal", VisibleToCoaches: false},
		}},
		Storage: &fakeStorage{},
	}
}

func TestVisibleClientsCoach(t *testing.T) {
	svc := newTestService()
	viewer := models.Viewer{ID: "c1", Role: models.RoleCoach}

	got, err := svc.VisibleClients(context.Background(), viewer, models.RosterFilters{}, "")
	require.NoError(t, err)

	// Coach accounts never appear in the roster, and only assigned clients do.
	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].ID)
	assert.Equal(t, "u3", got[1].ID)
}

func TestVisibleClientsUnknownRole(t *testing.T) {
	svc := newTestService()
	viewer := models.Viewer{ID: "c1", Role: models.Role("owner")}

	got, err := svc.VisibleClients(context.Background(), viewer, models.RosterFilters{}, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClientAttachmentsLayeredFiltering(t *testing.T) {
	svc := newTestService()

	// Assigned coach sees only shared records.
	coach := models.Viewer{ID: "c1", Role: models.RoleCoach}
	got, err := svc.ClientAttachments(context.Background(), coach, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)

	// Owner sees everything.
	owner := models.Viewer{ID: "u1", Role: models.RoleUser}
	got, err = svc.ClientAttachments(context.Background(), owner, "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Unassigned viewer gets an empty list, not an error.
	stranger := models.Viewer{ID: "u2", Role: models.RoleUser}
	got, err = svc.ClientAttachments(context.Background(), stranger, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSetAttachmentVisibility(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// The owner may share a private record.
	owner := models.Viewer{ID: "u1", Role: models.RoleUser}
	record, err := svc.SetAttachmentVisibility(ctx, owner, "a2", true)
	require.NoError(t, err)
	assert.True(t, record.VisibleToCoaches)

	// A coach may not, even when assigned to the client.
	coach := models.Viewer{ID: "c1", Role: models.RoleCoach}
	_, err = svc.SetAttachmentVisibility(ctx, coach, "a1", false)
	assert.ErrorIs(t, err, ErrNotAllowed)

	// Admins may.
	admin := models.Viewer{ID: "adm", Role: models.RoleAdmin}
	record, err = svc.SetAttachmentVisibility(ctx, admin, "a1", false)
	require.NoError(t, err)
	assert.False(t, record.VisibleToCoaches)
}

func TestUploadAttachment(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	owner := models.Viewer{ID: "u2", Role: models.RoleUser}
	record, err := svc.UploadAttachment(ctx, owner, "u2", "/tmp/progress.jpg", "Progress photo", false)
	require.NoError(t, err)
	assert.Equal(t, "u2", record.OwnerClientID)
	assert.False(t, record.VisibleToCoaches, "new uploads start private")
	assert.NotEmpty(t, record.URL)

	// Uploading into someone else's file list is rejected.
	_, err = svc.UploadAttachment(ctx, owner, "u1", "/tmp/x.jpg", "nope", false)
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestDeleteAttachment(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// A coach may not delete a client's record.
	coach := models.Viewer{ID: "c1", Role: models.RoleCoach}
	err := svc.DeleteAttachment(ctx, coach, "a1")
	assert.ErrorIs(t, err, ErrNotAllowed)

	// The owner may, and the stored file goes with it.
	owner := models.Viewer{ID: "u1", Role: models.RoleUser}
	require.NoError(t, svc.DeleteAttachment(ctx, owner, "a1"))

	got, err := svc.ClientAttachments(ctx, owner, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a2", got[0].ID)

	err = svc.DeleteAttachment(ctx, owner, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRosterAttachmentsGroupedByClient(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Assigned coach gets only shared records, keyed by client.
	coach := models.Viewer{ID: "c1", Role: models.RoleCoach}
	grouped, err := svc.RosterAttachments(ctx, coach, models.RosterFilters{})
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	require.Len(t, grouped["u1"], 1)
	assert.Equal(t, "a1", grouped["u1"][0].ID)

	// A client's own view contains all of their records and nobody else's.
	owner := models.Viewer{ID: "u1", Role: models.RoleUser}
	grouped, err = svc.RosterAttachments(ctx, owner, models.RosterFilters{})
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	assert.Len(t, grouped["u1"], 2)

	// An unknown role sees nothing.
	stranger := models.Viewer{ID: "x", Role: models.Role("owner")}
	grouped, err = svc.RosterAttachments(ctx, stranger, models.RosterFilters{})
	require.NoError(t, err)
	assert.Empty(t, grouped)
}

func TestRoster(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	assignment, err := svc.Roster(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u3"}, assignment.ClientIDs)

	// Unknown professionals resolve to an empty mapping, not an error.
	assignment, err = svc.Roster(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, assignment.ClientIDs)
}

func TestReplaceRoster(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	assignment, err := svc.ReplaceRoster(ctx, "c1", []string{"u2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, assignment.ClientIDs)

	stored, err := svc.Roster(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, stored.ClientIDs)

	// A nil list clears the roster rather than erroring.
	assignment, err = svc.ReplaceRoster(ctx, "c1", nil)
	require.NoError(t, err)
	assert.Empty(t, assignment.ClientIDs)
}
