package disclaimer

import (
	"context"
	"testing"
	"time"

	"fitpulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T) (*Gate, *MemoryAcceptanceStore) {
	t.Helper()
	store := NewMemoryAcceptanceStore()
	return NewGate(context.Background(), "u1", store), store
}

// receive reads a gate result with a timeout so a deadlocked gate fails the
// test instead of hanging it.
func receive(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for gate result")
		return false
	}
}

func TestEnsureAcceptedAlreadyAccepted(t *testing.T) {
	store := NewMemoryAcceptanceStore()
	require.NoError(t, store.Save(context.Background(), "u1", models.Acceptance{models.DisclaimerGeneral: true}))

	gate := NewGate(context.Background(), "u1", store)

	// Resolves immediately, no prompt raised.
	assert.True(t, receive(t, gate.EnsureAccepted(models.DisclaimerGeneral)))
	_, prompting := gate.Current()
	assert.False(t, prompting)
}

func TestEnsureAcceptedPromptsAndAccept(t *testing.T) {
	gate, store := newTestGate(t)

	ch := gate.EnsureAccepted(models.DisclaimerGeneral)

	current, prompting := gate.Current()
	require.True(t, prompting)
	assert.Equal(t, models.DisclaimerGeneral, current)

	gate.Accept(context.Background())
	assert.True(t, receive(t, ch))

	_, prompting = gate.Current()
	assert.False(t, prompting)

	// Acceptance was persisted in full.
	assert.True(t, store.Load(context.Background(), "u1").Accepted(models.DisclaimerGeneral))
}

func TestDuplicateRequestsShareOnePrompt(t *testing.T) {
	gate, _ := newTestGate(t)

	first := gate.EnsureAccepted(models.DisclaimerGeneral)
	second := gate.EnsureAccepted(models.DisclaimerGeneral)

	// One modal for both callers.
	current, prompting := gate.Current()
	require.True(t, prompting)
	assert.Equal(t, models.DisclaimerGeneral, current)

	gate.Accept(context.Background())
	assert.True(t, receive(t, first))
	assert.True(t, receive(t, second))

	// And a third call after acceptance resolves without prompting again.
	assert.True(t, receive(t, gate.EnsureAccepted(models.DisclaimerGeneral)))
	_, prompting = gate.Current()
	assert.False(t, prompting)
}

func TestConcurrentDifferentTypesQueueFIFO(t *testing.T) {
	gate, _ := newTestGate(t)

	doctorCh := gate.EnsureAccepted(models.DisclaimerDoctor)
	medicalCh := gate.EnsureAccepted(models.DisclaimerMedical)

	// Only the first prompt is visible.
	current, prompting := gate.Current()
	require.True(t, prompting)
	assert.Equal(t, models.DisclaimerDoctor, current)

	// The second request is still pending.
	select {
	case <-medicalCh:
		t.Fatal("medical request resolved while doctor prompt was still up")
	default:
	}

	gate.Accept(context.Background())
	assert.True(t, receive(t, doctorCh))

	// The queue serves medical next.
	current, prompting = gate.Current()
	require.True(t, prompting)
	assert.Equal(t, models.DisclaimerMedical, current)

	gate.Dismiss()
	assert.False(t, receive(t, medicalCh))

	_, prompting = gate.Current()
	assert.False(t, prompting)
}

func TestDismissDoesNotPersist(t *testing.T) {
	gate, store := newTestGate(t)

	ch := gate.EnsureAccepted(models.DisclaimerMedical)
	gate.Dismiss()
	assert.False(t, receive(t, ch))

	assert.False(t, store.Load(context.Background(), "u1").Accepted(models.DisclaimerMedical))
	assert.False(t, gate.Acceptance().Accepted(models.DisclaimerMedical))

	// The type prompts again on the next request.
	_ = gate.EnsureAccepted(models.DisclaimerMedical)
	current, prompting := gate.Current()
	require.True(t, prompting)
	assert.Equal(t, models.DisclaimerMedical, current)
}

func TestQueuedRequestResolvedByEarlierAcceptance(t *testing.T) {
	gate, _ := newTestGate(t)

	generalCh := gate.EnsureAccepted(models.DisclaimerGeneral)

	// Queue a second distinct type, then a duplicate of the first behind it.
	coachCh := gate.EnsureAccepted(models.DisclaimerCoach)
	generalAgain := gate.EnsureAccepted(models.DisclaimerGeneral)

	gate.Accept(context.Background()) // general
	assert.True(t, receive(t, generalCh))
	assert.True(t, receive(t, generalAgain))

	current, prompting := gate.Current()
	require.True(t, prompting)
	assert.Equal(t, models.DisclaimerCoach, current)

	gate.Accept(context.Background())
	assert.True(t, receive(t, coachCh))
}

func TestAcceptSurvivesStoreFailure(t *testing.T) {
	store := NewMemoryAcceptanceStore()
	store.FailSaves = true
	gate := NewGate(context.Background(), "u1", store)

	ch := gate.EnsureAccepted(models.DisclaimerGeneral)
	gate.Accept(context.Background())

	// The write failed but the in-memory state is authoritative.
	assert.True(t, receive(t, ch))
	assert.True(t, gate.Acceptance().Accepted(models.DisclaimerGeneral))
	assert.True(t, receive(t, gate.EnsureAccepted(models.DisclaimerGeneral)))
}

func TestAcceptWithoutPromptIsNoop(t *testing.T) {
	gate, _ := newTestGate(t)
	gate.Accept(context.Background())
	gate.Dismiss()

	_, prompting := gate.Current()
	assert.False(t, prompting)
}

func TestManagerReusesGatePerUser(t *testing.T) {
	manager := NewManager(NewMemoryAcceptanceStore())
	ctx := context.Background()

	g1 := manager.ForUser(ctx, "u1")
	g2 := manager.ForUser(ctx, "u1")
	other := manager.ForUser(ctx, "u2")

	assert.Same(t, g1, g2)
	assert.NotSame(t, g1, other)
}
