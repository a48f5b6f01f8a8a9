package content

import (
	"context"
	"time"

	assignmentRepo "fitpulse/database/repository/assignment"
	contentRepo "fitpulse/database/repository/content"
	"fitpulse/models"

	"github.com/hibiken/asynq"
)

// ContentService serves the workout/nutrition catalogs and coach-driven plan
// assignments.
type ContentService interface {
	WorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error)
	WorkoutPlanByID(ctx context.Context, id string) (*models.WorkoutPlan, error)
	NutritionPlans(ctx context.Context) ([]models.NutritionPlan, error)
	NutritionPlanByID(ctx context.Context, id string) (*models.NutritionPlan, error)
	AssignPlan(ctx context.Context, viewer models.Viewer, planID, clientID string, startsAt time.Time) (*models.PlanAssignment, error)
	PlanAssignmentsForClient(ctx context.Context, viewer models.Viewer, clientID string) ([]models.PlanAssignment, error)
}

// DefaultContentService is the production implementation. ReminderQueue may be
// nil, in which case session reminders are simply not scheduled.
type DefaultContentService struct {
	Repo           contentRepo.ContentRepository
	AssignmentRepo assignmentRepo.AssignmentRepository
	ReminderQueue  *asynq.Client
}
