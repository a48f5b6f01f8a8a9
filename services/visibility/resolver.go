// File: services/visibility/resolver.go
package visibility

import (
	"strings"

	"fitpulse/models"
)

// ResolveVisibleClients filters allClients down to the records the viewer may
// see, then applies the optional status and search filters. Input order is
// preserved; there is no re-sort. A viewer with no matching assignment gets an
// empty roster, a valid result rather than an error. The caller cannot
// distinguish "no permission" from "no data".
func ResolveVisibleClients(viewer models.Viewer, assignments []models.Assignment, allClients []models.RosterRecord, filters models.RosterFilters) []models.RosterRecord {
	return ResolveVisibleClientsAs(viewer, assignments, allClients, filters, "")
}

// ResolveVisibleClientsAs is ResolveVisibleClients with an explicit
// professional id override for the assignment lookup.
func ResolveVisibleClientsAs(viewer models.Viewer, assignments []models.Assignment, allClients []models.RosterRecord, filters models.RosterFilters, professionalID string) []models.RosterRecord {
	allowed := allowedClientIDs(viewer, assignments, allClients, professionalID)

	result := make([]models.RosterRecord, 0, len(allClients))
	search := strings.ToLower(strings.TrimSpace(filters.Search))

	for _, client := range allClients {
		if !allowed[client.ID] {
			continue
		}
		if filters.Status != "" && filters.Status != "all" && client.Status != filters.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(client.Name), search) &&
			!strings.Contains(strings.ToLower(client.Email), search) {
			continue
		}
		result = append(result, client)
	}

	return result
}

// ResolveAttachments returns the attachments of clientID that the viewer may
// see. Two independent layers are enforced for every record returned: the
// coarse can-view-any check, then the per-record VisibleToCoaches flag when a
// coach/medical professional is looking at someone else's documents. Admins
// and the owning client see private records too. No permission means an empty
// slice, indistinguishable from a client with no attachments.
func ResolveAttachments(viewer models.Viewer, clientID string, assignments []models.Assignment, attachmentsByClient map[string][]models.AttachmentRecord) []models.AttachmentRecord {
	if !CanViewClient(viewer, clientID, assignments) {
		return []models.AttachmentRecord{}
	}

	records := attachmentsByClient[clientID]

	// Admins and owners see the full unfiltered list.
	if viewer.Role == models.RoleAdmin || (viewer.Role == models.RoleUser && viewer.ID == clientID) {
		out := make([]models.AttachmentRecord, 0, len(records))
		return append(out, records...)
	}

	// Coach/medical viewing another client: only records flagged visible.
	out := make([]models.AttachmentRecord, 0, len(records))
	for _, rec := range records {
		if rec.VisibleToCoaches {
			out = append(out, rec)
		}
	}
	return out
}
