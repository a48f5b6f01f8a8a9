package ai

import (
	"context"
	"strings"
	"testing"

	"fitpulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	lastPrompt string
	reply      string
}

func (g *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	return g.reply, nil
}

type memoryContextStore struct {
	contexts map[string]*models.AIContext
}

func newMemoryContextStore() *memoryContextStore {
	return &memoryContextStore{contexts: map[string]*models.AIContext{}}
}

func (s *memoryContextStore) Get(_ context.Context, userID string) (*models.AIContext, error) {
	if c, ok := s.contexts[userID]; ok {
		copied := *c
		return &copied, nil
	}
	return &models.AIContext{}, nil
}

func (s *memoryContextStore) Set(_ context.Context, userID string, aiCtx *models.AIContext) error {
	copied := *aiCtx
	s.contexts[userID] = &copied
	return nil
}

func (s *memoryContextStore) Clear(_ context.Context, userID string) error {
	delete(s.contexts, userID)
	return nil
}

type fakeUserRepo struct {
	users map[string]models.User
}

func (r *fakeUserRepo) Create(_ context.Context, _ models.User) error { return nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetAllByRole(_ context.Context, _ models.Role) ([]models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) UpdateFields(_ context.Context, _ string, _ map[string]any) error {
	return nil
}

func (r *fakeUserRepo) SetTokenHash(_ context.Context, _, _ string) error { return nil }
func (r *fakeUserRepo) Delete(_ context.Context, _ string) error          { return nil }

func newTestCoach(reply string) (*DefaultCoachService, *fakeGenerator, *memoryContextStore) {
	gen := &fakeGenerator{reply: reply}
	store := newMemoryContextStore()
	users := &fakeUserRepo{users: map[string]models.User{
		"u1": {ID: "u1", Goal: "lose 5kg before summer"},
	}}
	return NewCoachService(gen, store, users), gen, store
}

func TestChatIncludesGoalInPrompt(t *testing.T) {
	svc, gen, _ := newTestCoach("Start with three sessions a week.")

	resp, err := svc.Chat(context.Background(), models.AIRequest{UserID: "u1", Text: "how often should I train?"})
	require.NoError(t, err)

	assert.Equal(t, "Start with three sessions a week.", resp.Reply)
	assert.Contains(t, gen.lastPrompt, "lose 5kg before summer")
	assert.Contains(t, gen.lastPrompt, "how often should I train?")
}

func TestChatKeepsRollingHistory(t *testing.T) {
	svc, gen, store := newTestCoach("ok")

	_, err := svc.Chat(context.Background(), models.AIRequest{UserID: "u1", Text: "first question"})
	require.NoError(t, err)
	_, err = svc.Chat(context.Background(), models.AIRequest{UserID: "u1", Text: "second question"})
	require.NoError(t, err)

	assert.Contains(t, gen.lastPrompt, "User: first question")

	saved := store.contexts["u1"]
	require.NotNil(t, saved)
	assert.Len(t, saved.History, 4)
	assert.Equal(t, "User: second question", saved.History[2])
}

func TestChatCapsHistoryLength(t *testing.T) {
	svc, _, store := newTestCoach("ok")

	for i := 0; i < 10; i++ {
		_, err := svc.Chat(context.Background(), models.AIRequest{UserID: "u1", Text: "question"})
		require.NoError(t, err)
	}

	saved := store.contexts["u1"]
	require.NotNil(t, saved)
	assert.Len(t, saved.History, maxHistoryEntries)
	assert.True(t, strings.HasPrefix(saved.History[len(saved.History)-1], "Coach: "))
}

func TestResetClearsContext(t *testing.T) {
	svc, _, store := newTestCoach("ok")

	_, err := svc.Chat(context.Background(), models.AIRequest{UserID: "u1", Text: "hello"})
	require.NoError(t, err)
	require.NoError(t, svc.Reset(context.Background(), "u1"))

	_, ok := store.contexts["u1"]
	assert.False(t, ok)
}
