package disclaimer

import (
	"context"
	"testing"
	"time"

	"fitpulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredTypesGeneralOnly(t *testing.T) {
	assert.Equal(t,
		[]models.DisclaimerType{models.DisclaimerGeneral},
		RequiredTypes("/home"))
}

func TestRequiredTypesMedicalRoute(t *testing.T) {
	// general always first, then doctor, then medical.
	assert.Equal(t,
		[]models.DisclaimerType{models.DisclaimerGeneral, models.DisclaimerDoctor, models.DisclaimerMedical},
		RequiredTypes("/medical/bloodwork"))

	// A "doctor" segment anywhere triggers the same chain.
	assert.Equal(t,
		[]models.DisclaimerType{models.DisclaimerGeneral, models.DisclaimerDoctor, models.DisclaimerMedical},
		RequiredTypes("/profile/doctor/reports"))
}

func TestRequiredTypesShopAndCoaching(t *testing.T) {
	assert.Equal(t,
		[]models.DisclaimerType{models.DisclaimerGeneral, models.DisclaimerProductSelling},
		RequiredTypes("/shop/supplements"))

	assert.Equal(t,
		[]models.DisclaimerType{models.DisclaimerGeneral, models.DisclaimerCoach},
		RequiredTypes("/api/coaching/clients"))

	assert.Equal(t,
		[]models.DisclaimerType{models.DisclaimerGeneral, models.DisclaimerAudio},
		RequiredTypes("/workouts/audio/session-1"))
}

// waitForPrompt polls until the gate shows the expected prompt.
func waitForPrompt(t *testing.T, gate *Gate, want models.DisclaimerType) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if current, ok := gate.Current(); ok && current == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("gate never prompted for %q", want)
}

func TestGuardRunMedicalRouteSequence(t *testing.T) {
	// Fresh session, nothing persisted: /medical/bloodwork walks
	// general → doctor → medical, one prompt at a time. Declining doctor
	// does not short-circuit the medical check.
	gate := NewGate(context.Background(), "u1", NewMemoryAcceptanceStore())

	done := make(chan []Decision, 1)
	go func() {
		done <- Run(gate, "/medical/bloodwork")
	}()

	waitForPrompt(t, gate, models.DisclaimerGeneral)
	gate.Accept(context.Background())

	waitForPrompt(t, gate, models.DisclaimerDoctor)
	gate.Dismiss()

	waitForPrompt(t, gate, models.DisclaimerMedical)
	gate.Accept(context.Background())

	select {
	case decisions := <-done:
		require.Len(t, decisions, 3)
		assert.Equal(t, Decision{Type: models.DisclaimerGeneral, Accepted: true}, decisions[0])
		assert.Equal(t, Decision{Type: models.DisclaimerDoctor, Accepted: false}, decisions[1])
		assert.Equal(t, Decision{Type: models.DisclaimerMedical, Accepted: true}, decisions[2])
	case <-time.After(2 * time.Second):
		t.Fatal("guard run did not finish")
	}
}

func TestGuardRunSkipsAcceptedTypes(t *testing.T) {
	store := NewMemoryAcceptanceStore()
	require.NoError(t, store.Save(context.Background(), "u1", models.Acceptance{
		models.DisclaimerGeneral: true,
		models.DisclaimerDoctor:  true,
		models.DisclaimerMedical: true,
	}))
	gate := NewGate(context.Background(), "u1", store)

	// Everything already accepted: no prompt, fully synchronous.
	decisions := Run(gate, "/medical/bloodwork")
	require.Len(t, decisions, 3)
	for _, d := range decisions {
		assert.True(t, d.Accepted)
	}
	_, prompting := gate.Current()
	assert.False(t, prompting)
}

func TestSectionForKnownTypes(t *testing.T) {
	for _, dtype := range models.AllDisclaimerTypes {
		section, ok := SectionFor(dtype)
		require.True(t, ok, "missing legal section for %q", dtype)
		assert.NotEmpty(t, section.Title)
		assert.NotEmpty(t, section.Content)
	}

	_, ok := SectionFor(models.DisclaimerType("bogus"))
	assert.False(t, ok)
}
