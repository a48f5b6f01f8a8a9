package contentRepo

import (
	"context"
	"time"

	"fitpulse/database"
	"fitpulse/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoContentRepo struct {
	workouts    *mongo.Collection
	nutrition   *mongo.Collection
	assignments *mongo.Collection
}

// NewMongoContentRepo returns a ContentRepository backed by MongoDB.
func NewMongoContentRepo() ContentRepository {
	db := database.DB()
	return &mongoContentRepo{
		workouts:    db.Collection("workout_plans"),
		nutrition:   db.Collection("nutrition_plans"),
		assignments: db.Collection("plan_assignments"),
	}
}

func (r *mongoContentRepo) GetWorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.workouts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.WorkoutPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mongoContentRepo) GetWorkoutPlanByID(ctx context.Context, id string) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := r.workouts.FindOne(ctx, bson.M{"id": id}).Decode(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mongoContentRepo) GetNutritionPlans(ctx context.Context) ([]models.NutritionPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.nutrition.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.NutritionPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mongoContentRepo) GetNutritionPlanByID(ctx context.Context, id string) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	if err := r.nutrition.FindOne(ctx, bson.M{"id": id}).Decode(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// CreatePlanAssignment records a coach assigning a plan to a client.
func (r *mongoContentRepo) CreatePlanAssignment(ctx context.Context, assignment models.PlanAssignment) (string, error) {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	assignment.CreatedAt = time.Now()

	if _, err := r.assignments.InsertOne(ctx, assignment); err != nil {
		return "", err
	}
	return assignment.ID, nil
}

func (r *mongoContentRepo) GetPlanAssignmentsForClient(ctx context.Context, clientID string) ([]models.PlanAssignment, error) {
	cursor, err := r.assignments.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []models.PlanAssignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}
