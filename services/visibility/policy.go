// File: services/visibility/policy.go
package visibility

import "fitpulse/models"

// allowedClientIDs computes the set of client ids the viewer may see at all.
// professionalID overrides the viewer id for the assignment lookup when a
// coach/medical roster is requested on someone's behalf (admin tooling).
// Unknown roles get an empty set: fail closed, never an error.
func allowedClientIDs(viewer models.Viewer, assignments []models.Assignment, allClients []models.RosterRecord, professionalID string) map[string]bool {
	allowed := make(map[string]bool)

	switch viewer.Role {
	case models.RoleAdmin:
		for _, c := range allClients {
			allowed[c.ID] = true
		}
	case models.RoleCoach, models.RoleMedical:
		lookupID := viewer.ID
		if professionalID != "" {
			lookupID = professionalID
		}
		for _, a := range assignments {
			if a.ProfessionalID != lookupID {
				continue
			}
			for _, id := range a.ClientIDs {
				allowed[id] = true
			}
		}
	case models.RoleUser:
		allowed[viewer.ID] = true
	default:
		// fail closed
	}

	return allowed
}

// CanViewClient reports whether the viewer may see any records belonging to
// clientID. This is the coarse "can view at all" layer; per-record visibility
// flags are enforced separately.
func CanViewClient(viewer models.Viewer, clientID string, assignments []models.Assignment) bool {
	switch viewer.Role {
	case models.RoleAdmin:
		return true
	case models.RoleCoach, models.RoleMedical:
		for _, a := range assignments {
			if a.ProfessionalID != viewer.ID {
				continue
			}
			for _, id := range a.ClientIDs {
				if id == clientID {
					return true
				}
			}
		}
		return false
	case models.RoleUser:
		return viewer.ID == clientID
	default:
		return false
	}
}
