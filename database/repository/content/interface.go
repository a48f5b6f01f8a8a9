package contentRepo

import (
	"context"

	"fitpulse/models"
)

// ContentRepository serves the workout and nutrition catalogs plus per-client
// plan assignments.
type ContentRepository interface {
	GetWorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error)
	GetWorkoutPlanByID(ctx context.Context, id string) (*models.WorkoutPlan, error)
	GetNutritionPlans(ctx context.Context) ([]models.NutritionPlan, error)
	GetNutritionPlanByID(ctx context.Context, id string) (*models.NutritionPlan, error)
	CreatePlanAssignment(ctx context.Context, assignment models.PlanAssignment) (string, error)
	GetPlanAssignmentsForClient(ctx context.Context, clientID string) ([]models.PlanAssignment, error)
}
