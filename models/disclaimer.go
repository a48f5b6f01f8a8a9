package models

// DisclaimerType is a category of legal/compliance notice gated independently.
type DisclaimerType string

const (
	DisclaimerMedical        DisclaimerType = "medical"
	DisclaimerDoctor         DisclaimerType = "doctor"
	DisclaimerAudio          DisclaimerType = "audio"
	DisclaimerCoach          DisclaimerType = "coach"
	DisclaimerProductSelling DisclaimerType = "product_selling"
	DisclaimerGeneral        DisclaimerType = "general"
)

// AllDisclaimerTypes lists every known disclaimer type.
var AllDisclaimerTypes = []DisclaimerType{
	DisclaimerMedical,
	DisclaimerDoctor,
	DisclaimerAudio,
	DisclaimerCoach,
	DisclaimerProductSelling,
	DisclaimerGeneral,
}

// Acceptance is the persisted per-user acceptance map. It is stored as a single
// JSON blob; an absent key means not accepted. Once true for a type it never
// auto-reverts; there is no revoke operation.
type Acceptance map[DisclaimerType]bool

// Accepted reports whether the given type has been accepted. Nil maps read as
// nothing accepted.
func (a Acceptance) Accepted(t DisclaimerType) bool {
	if a == nil {
		return false
	}
	return a[t]
}

// LegalSection is a legal document served alongside a disclaimer prompt.
type LegalSection struct {
	Type    DisclaimerType `json:"type"`
	Title   string         `json:"title"`
	Summary string         `json:"summary"`
	Content string         `json:"content"`
	Version string         `json:"version"`
	Updated string         `json:"updated"`
}
