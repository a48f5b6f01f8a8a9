package models

// Client status values used in roster filtering.
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusTrial    = "trial"
)

// Assignment maps a coach or medical professional to the clients they may access.
// A client may appear under multiple professionals (shared care).
type Assignment struct {
	ProfessionalID string   `bson:"professionalId" json:"professionalId"`
	ClientIDs      []string `bson:"clientIds" json:"clientIds"`
}

// RosterRecord is the client summary shown on coach/admin roster screens.
type RosterRecord struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Email     string  `bson:"email" json:"email"`
	Status    string  `bson:"status" json:"status"` // active | inactive | trial
	Goal      string  `bson:"goal,omitempty" json:"goal,omitempty"`
	AvatarURL string  `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Weight    float64 `bson:"weight,omitempty" json:"weight,omitempty"`
}

// RosterFilters are the optional narrowing parameters for a roster query.
// Status "all" (or empty) is a no-op; Search matches name or email,
// case-insensitive substring.
type RosterFilters struct {
	Status string `form:"status" json:"status,omitempty"`
	Search string `form:"search" json:"search,omitempty"`
}
