// File: services/disclaimer/guard.go
package disclaimer

import (
	"strings"

	"fitpulse/models"
)

// Decision is the outcome of one guard check.
type Decision struct {
	Type     models.DisclaimerType `json:"type"`
	Accepted bool                  `json:"accepted"`
}

// RequiredTypes returns the ordered disclaimer types a route demands.
// "general" always comes first regardless of path. Medical routes (any
// "doctor" segment, or a "/medical" prefix) then require doctor and medical,
// in that order. Audio, coaching and shop routes add their own type.
func RequiredTypes(path string) []models.DisclaimerType {
	required := []models.DisclaimerType{models.DisclaimerGeneral}

	if hasSegment(path, "doctor") || strings.HasPrefix(path, "/medical") {
		required = append(required, models.DisclaimerDoctor, models.DisclaimerMedical)
	}
	if hasSegment(path, "audio") {
		required = append(required, models.DisclaimerAudio)
	}
	if strings.HasPrefix(path, "/coaching") || strings.HasPrefix(path, "/api/coaching") || strings.HasPrefix(path, "/api/ai") {
		required = append(required, models.DisclaimerCoach)
	}
	if strings.HasPrefix(path, "/shop") || strings.HasPrefix(path, "/api/shop") {
		required = append(required, models.DisclaimerProductSelling)
	}

	return required
}

func hasSegment(path, segment string) bool {
	for _, s := range strings.Split(path, "/") {
		if s == segment {
			return true
		}
	}
	return false
}

// Run walks the route's required types through the gate sequentially: each
// check is awaited before the next starts, so at most one prompt is visible.
// Declining one type does not short-circuit the later checks; every required
// type gets its own independent answer.
func Run(gate *Gate, path string) []Decision {
	var decisions []Decision
	for _, dtype := range RequiredTypes(path) {
		accepted := <-gate.EnsureAccepted(dtype)
		decisions = append(decisions, Decision{Type: dtype, Accepted: accepted})
	}
	return decisions
}

// Start kicks off Run in the background, for callers that only need the gate
// to begin prompting (the HTTP layer reads progress via Gate.Current).
func Start(gate *Gate, path string) {
	go Run(gate, path)
}
