package visibility

import (
	"testing"

	"fitpulse/models"

	"github.com/stretchr/testify/assert"
)

func testClients() []models.RosterRecord {
	return []models.RosterRecord{
		{ID: "u1", Name: "Ada Moyo", Email: "ada@example.com", Status: models.ClientStatusActive},
		{ID: "u2", Name: "Ben Kip", Email: "ben@example.com", Status: models.ClientStatusTrial},
		{ID: "u3", Name: "Cara Otieno", Email: "cara@example.com", Status: models.ClientStatusActive},
	}
}

func testAssignments() []models.Assignment {
	return []models.Assignment{
		{ProfessionalID: "c1", ClientIDs: []string{"u1", "u3"}},
		{ProfessionalID: "m1", ClientIDs: []string{"u2"}},
	}
}

func TestResolveVisibleClientsAdminSeesAll(t *testing.T) {
	viewer := models.Viewer{ID: "a1", Role: models.RoleAdmin}
	got := ResolveVisibleClients(viewer, testAssignments(), testClients(), models.RosterFilters{})
	assert.Len(t, got, 3)
}

func TestResolveVisibleClientsCoachSeesAssigned(t *testing.T) {
	viewer := models.Viewer{ID: "c1", Role: models.RoleCoach}
	got := ResolveVisibleClients(viewer, testAssignments(), testClients(), models.RosterFilters{})

	// u1 and u3 in original input order.
	assert.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].ID)
	assert.Equal(t, "u3", got[1].ID)
}

func TestResolveVisibleClientsCoachWithNoAssignment(t *testing.T) {
	viewer := models.Viewer{ID: "c-unknown", Role: models.RoleCoach}
	got := ResolveVisibleClients(viewer, testAssignments(), testClients(), models.RosterFilters{})
	assert.Empty(t, got)
}

func TestResolveVisibleClientsMedicalRole(t *testing.T) {
	viewer := models.Viewer{ID: "m1", Role: models.RoleMedical}
	got := ResolveVisibleClients(viewer, testAssignments(), testClients(), models.RosterFilters{})
	assert.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)
}

func TestResolveVisibleClientsUserSeesSelfOnly(t *testing.T) {
	viewer := models.Viewer{ID: "u2", Role: models.RoleUser}
	got := ResolveVisibleClients(viewer, testAssignments(), testClients(), models.RosterFilters{})
	assert.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)

	// A user whose id matches no roster record sees nothing.
	ghost := models.Viewer{ID: "u99", Role: models.RoleUser}
	assert.Empty(t, ResolveVisibleClients(ghost, testAssignments(), testClients(), models.RosterFilters{}))
}

func TestResolveVisibleClientsUnknownRoleFailsClosed(t *testing.T) {
	viewer := models.Viewer{ID: "x1", Role: models.Role("superuser")}
	got := ResolveVisibleClients(viewer, testAssignments(), testClients(), models.RosterFilters{})
	assert.Empty(t, got)
}

func TestResolveVisibleClientsEmptyAssignmentTable(t *testing.T) {
	viewer := models.Viewer{ID: "c1", Role: models.RoleCoach}
	got := ResolveVisibleClients(viewer, nil, testClients(), models.RosterFilters{})
	assert.Empty(t, got)
}

func TestResolveVisibleClientsStatusFilter(t *testing.T) {
	viewer := models.Viewer{ID: "a1", Role: models.RoleAdmin}

	got := ResolveVisibleClients(viewer, nil, testClients(), models.RosterFilters{Status: models.ClientStatusTrial})
	assert.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)

	// "all" is a no-op.
	got = ResolveVisibleClients(viewer, nil, testClients(), models.RosterFilters{Status: "all"})
	assert.Len(t, got, 3)
}

func TestResolveVisibleClientsSearchFilter(t *testing.T) {
	viewer := models.Viewer{ID: "a1", Role: models.RoleAdmin}

	// Case-insensitive, matches name.
	got := ResolveVisibleClients(viewer, nil, testClients(), models.RosterFilters{Search: "ADA"})
	assert.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].ID)

	// Matches email.
	got = ResolveVisibleClients(viewer, nil, testClients(), models.RosterFilters{Search: "ben@"})
	assert.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)
}

func TestResolveVisibleClientsProfessionalOverride(t *testing.T) {
	// Admin tooling requests coach c1's roster on their behalf.
	viewer := models.Viewer{ID: "other", Role: models.RoleCoach}
	got := ResolveVisibleClientsAs(viewer, testAssignments(), testClients(), models.RosterFilters{}, "c1")
	assert.Len(t, got, 2)
}

func testAttachments() map[string][]models.AttachmentRecord {
	return map[string][]models.AttachmentRecord{
		"u1": {
			{ID: "a1", OwnerClientID: "u1", Title: "Bloodwork Q1", VisibleToCoaches: true},
			{ID: "a2", OwnerClientID: "u1", Title: "Private journal", VisibleToCoaches: false},
		},
	}
}

func TestResolveAttachmentsCoachSeesOnlyShared(t *testing.T) {
	viewer := models.Viewer{ID: "c1", Role: models.RoleCoach}
	got := ResolveAttachments(viewer, "u1", testAssignments(), testAttachments())

	assert.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
	for _, rec := range got {
		assert.True(t, rec.VisibleToCoaches)
	}
}

func TestResolveAttachmentsOwnerSeesAll(t *testing.T) {
	viewer := models.Viewer{ID: "u1", Role: models.RoleUser}
	got := ResolveAttachments(viewer, "u1", testAssignments(), testAttachments())
	assert.Len(t, got, 2)
}

func TestResolveAttachmentsAdminSeesAll(t *testing.T) {
	viewer := models.Viewer{ID: "a1", Role: models.RoleAdmin}
	got := ResolveAttachments(viewer, "u1", testAssignments(), testAttachments())
	assert.Len(t, got, 2)
}

func TestResolveAttachmentsNonDisclosure(t *testing.T) {
	// m1 is not assigned to u1: empty result even though records exist.
	viewer := models.Viewer{ID: "m1", Role: models.RoleMedical}
	got := ResolveAttachments(viewer, "u1", testAssignments(), testAttachments())
	assert.NotNil(t, got)
	assert.Empty(t, got)

	// Another user gets the same empty answer.
	stranger := models.Viewer{ID: "u2", Role: models.RoleUser}
	assert.Empty(t, ResolveAttachments(stranger, "u1", testAssignments(), testAttachments()))

	// As does an unknown role.
	odd := models.Viewer{ID: "u1", Role: models.Role("owner")}
	assert.Empty(t, ResolveAttachments(odd, "u1", testAssignments(), testAttachments()))
}

func TestResolveAttachmentsNoRecords(t *testing.T) {
	viewer := models.Viewer{ID: "m1", Role: models.RoleMedical}
	got := ResolveAttachments(viewer, "u2", testAssignments(), testAttachments())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
