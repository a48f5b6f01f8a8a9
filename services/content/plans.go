package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitpulse/models"
	"fitpulse/services/tasks"
	"fitpulse/services/visibility"
	"fitpulse/utils"

	"go.uber.org/zap"
)

// ErrNotAllowed is returned when the viewer may not manage the client's plans.
var ErrNotAllowed = errors.New("viewer is not allowed to manage this client's plans")

func (s *DefaultContentService) WorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error) {
	return s.Repo.GetWorkoutPlans(ctx)
}

func (s *DefaultContentService) WorkoutPlanByID(ctx context.Context, id string) (*models.WorkoutPlan, error) {
	return s.Repo.GetWorkoutPlanByID(ctx, id)
}

func (s *DefaultContentService) NutritionPlans(ctx context.Context) ([]models.NutritionPlan, error) {
	return s.Repo.GetNutritionPlans(ctx)
}

func (s *DefaultContentService) NutritionPlanByID(ctx context.Context, id string) (*models.NutritionPlan, error) {
	return s.Repo.GetNutritionPlanByID(ctx, id)
}

// AssignPlan ties a catalog plan to a client. Coaches may assign only to
// clients on their roster; admins to anyone. A session reminder is scheduled
// for the start date when a reminder queue is configured.
func (s *DefaultContentService) AssignPlan(ctx context.Context, viewer models.Viewer, planID, clientID string, startsAt time.Time) (*models.PlanAssignment, error) {
	logger := utils.GetLogger()

	if err := s.authorizePlanAccess(ctx, viewer, clientID); err != nil {
		return nil, err
	}

	plan, err := s.Repo.GetWorkoutPlanByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("content: unknown plan %s: %w", planID, err)
	}

	assignment := models.PlanAssignment{
		PlanID:     planID,
		ClientID:   clientID,
		AssignedBy: viewer.ID,
		StartsAt:   startsAt,
	}
	id, err := s.Repo.CreatePlanAssignment(ctx, assignment)
	if err != nil {
		return nil, fmt.Errorf("content: failed to store plan assignment: %w", err)
	}
	assignment.ID = id

	if s.ReminderQueue != nil && startsAt.After(time.Now()) {
		payload := models.ReminderPayload{
			UserID:    clientID,
			PlanID:    planID,
			PlanTitle: plan.Title,
			SessionAt: startsAt,
		}
		task, opts, err := tasks.NewWorkoutReminderTask(payload, startsAt.Add(-time.Hour))
		if err != nil {
			logger.Warn("failed to build reminder task", zap.Error(err))
		} else if _, err := s.ReminderQueue.EnqueueContext(ctx, task, opts...); err != nil {
			logger.Warn("failed to enqueue reminder task", zap.Error(err))
		}
	}

	logger.Info("plan assigned",
		zap.String("planID", planID),
		zap.String("clientID", clientID),
		zap.String("assignedBy", viewer.ID))
	return &assignment, nil
}

// PlanAssignmentsForClient lists a client's plan assignments, restricted to
// viewers who may see that client at all.
func (s *DefaultContentService) PlanAssignmentsForClient(ctx context.Context, viewer models.Viewer, clientID string) ([]models.PlanAssignment, error) {
	assignments, err := s.AssignmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("content: failed to load assignments: %w", err)
	}
	if !visibility.CanViewClient(viewer, clientID, assignments) {
		// Same non-disclosure shape as the attachment resolver.
		return []models.PlanAssignment{}, nil
	}
	return s.Repo.GetPlanAssignmentsForClient(ctx, clientID)
}

func (s *DefaultContentService) authorizePlanAccess(ctx context.Context, viewer models.Viewer, clientID string) error {
	if viewer.Role == models.RoleAdmin {
		return nil
	}
	if viewer.Role != models.RoleCoach {
		return ErrNotAllowed
	}
	assignments, err := s.AssignmentRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("content: failed to load assignments: %w", err)
	}
	if !visibility.CanViewClient(viewer, clientID, assignments) {
		return ErrNotAllowed
	}
	return nil
}
