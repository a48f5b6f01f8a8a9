// File: services/intelligence/interface.go
package ai

import (
	"context"
	"fmt"
	"strings"

	userRepo "fitpulse/database/repository/user"
	"fitpulse/models"
)

// Keep at most this many prior exchanges in the rolling context.
const maxHistoryEntries = 12

// TextGenerator produces a completion for a prompt. GeminiClient is the
// production implementation.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ContextStore persists per-user conversation state. RedisContextStore is the
// production implementation.
type ContextStore interface {
	Get(ctx context.Context, userID string) (*models.AIContext, error)
	Set(ctx context.Context, userID string, aiCtx *models.AIContext) error
	Clear(ctx context.Context, userID string) error
}

// CoachService answers free-form training and nutrition questions, grounded
// in the user's stated goal and the rolling conversation history.
type CoachService interface {
	Chat(ctx context.Context, req models.AIRequest) (*models.AIResponse, error)
	Reset(ctx context.Context, userID string) error
}

type DefaultCoachService struct {
	Generator TextGenerator
	CtxStore  ContextStore
	UserRepo  userRepo.UserRepository
}

func NewCoachService(gen TextGenerator, store ContextStore, users userRepo.UserRepository) *DefaultCoachService {
	return &DefaultCoachService{Generator: gen, CtxStore: store, UserRepo: users}
}

// Chat runs one turn of the coach conversation.
func (s *DefaultCoachService) Chat(ctx context.Context, req models.AIRequest) (*models.AIResponse, error) {
	aiCtx, err := s.CtxStore.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("ai: load context: %w", err)
	}

	if aiCtx.Goal == "" {
		if u, err := s.UserRepo.GetByID(ctx, req.UserID); err == nil && u != nil {
			aiCtx.Goal = u.Goal
		}
	}

	prompt := buildPrompt(aiCtx, req.Text)
	reply, err := s.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("ai: generate reply: %w", err)
	}

	aiCtx.History = append(aiCtx.History,
		"User: "+req.Text,
		"Coach: "+reply)
	if len(aiCtx.History) > maxHistoryEntries {
		aiCtx.History = aiCtx.History[len(aiCtx.History)-maxHistoryEntries:]
	}
	if err := s.CtxStore.Set(ctx, req.UserID, aiCtx); err != nil {
		return nil, fmt.Errorf("ai: save context: %w", err)
	}

	return &models.AIResponse{Reply: reply}, nil
}

// Reset drops the conversation history for a user.
func (s *DefaultCoachService) Reset(ctx context.Context, userID string) error {
	return s.CtxStore.Clear(ctx, userID)
}

func buildPrompt(aiCtx *models.AIContext, text string) string {
	var sb strings.Builder
	sb.WriteString("You are a certified fitness and nutrition coach. ")
	sb.WriteString("Answer briefly and practically. Never give medical diagnoses; ")
	sb.WriteString("refer users with medical questions to their doctor.\n")
	if aiCtx.Goal != "" {
		sb.WriteString("The user's training goal: " + aiCtx.Goal + "\n")
	}
	if len(aiCtx.History) > 0 {
		sb.WriteString("Conversation so far:\n")
		for _, line := range aiCtx.History {
			sb.WriteString(line + "\n")
		}
	}
	sb.WriteString("User: " + text + "\nCoach:")
	return sb.String()
}
