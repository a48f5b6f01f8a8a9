package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fitpulse/config"
	"fitpulse/database"
	"fitpulse/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a local database with a small coaching roster, content catalog and
// shop inventory for manual API testing.
func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collections := []string{"users", "assignments", "attachments", "workout_plans", "nutrition_plans", "plan_assignments", "products", "orders"}
	for _, name := range collections {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	now := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	newUser := func(username, email string, role models.Role, status, goal string, weight float64) models.User {
		return models.User{
			ID:           uuid.New().String(),
			Username:     username,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			Status:       status,
			Goal:         goal,
			Weight:       weight,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	admin := newUser("admin", "admin@fitpulse.dev", models.RoleAdmin, models.ClientStatusActive, "", 0)
	coach := newUser("coach_amara", "amara@fitpulse.dev", models.RoleCoach, models.ClientStatusActive, "", 0)
	doctor := newUser("dr_osei", "osei@fitpulse.dev", models.RoleMedical, models.ClientStatusActive, "", 0)
	clients := []models.User{
		newUser("jordan", "jordan@example.com", models.RoleUser, models.ClientStatusActive, "lose 5kg before summer", 82.5),
		newUser("sam", "sam@example.com", models.RoleUser, models.ClientStatusTrial, "build upper body strength", 71.0),
		newUser("alex", "alex@example.com", models.RoleUser, models.ClientStatusInactive, "marathon under 4 hours", 66.3),
	}

	var userDocs []interface{}
	for _, u := range append([]models.User{admin, coach, doctor}, clients...) {
		userDocs = append(userDocs, u)
	}
	if _, err := db.Collection("users").InsertMany(ctx, userDocs); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	// The coach trains the first two clients; the doctor follows the first.
	assignments := []interface{}{
		models.Assignment{ProfessionalID: coach.ID, ClientIDs: []string{clients[0].ID, clients[1].ID}},
		models.Assignment{ProfessionalID: doctor.ID, ClientIDs: []string{clients[0].ID}},
	}
	if _, err := db.Collection("assignments").InsertMany(ctx, assignments); err != nil {
		log.Fatalf("Failed to seed assignments: %v", err)
	}

	attachments := []interface{}{
		models.AttachmentRecord{
			ID:               uuid.New().String(),
			OwnerClientID:    clients[0].ID,
			Title:            "Progress photo week 1",
			URL:              "https://res.cloudinary.com/fitpulse/image/upload/progress-w1.jpg",
			CreatedAt:        now.Add(-72 * time.Hour),
			VisibleToCoaches: true,
		},
		models.AttachmentRecord{
			ID:               uuid.New().String(),
			OwnerClientID:    clients[0].ID,
			Title:            "Bloodwork results",
			URL:              "https://res.cloudinary.com/fitpulse/image/upload/bloodwork.pdf",
			CreatedAt:        now.Add(-48 * time.Hour),
			VisibleToCoaches: false,
		},
		models.AttachmentRecord{
			ID:               uuid.New().String(),
			OwnerClientID:    clients[1].ID,
			Title:            "Form check video",
			URL:              "https://res.cloudinary.com/fitpulse/video/upload/form-check.mp4",
			CreatedAt:        now.Add(-24 * time.Hour),
			VisibleToCoaches: true,
		},
	}
	if _, err := db.Collection("attachments").InsertMany(ctx, attachments); err != nil {
		log.Fatalf("Failed to seed attachments: %v", err)
	}

	workouts := []interface{}{
		models.WorkoutPlan{
			ID:          uuid.New().String(),
			Title:       "Foundation Strength",
			Description: "Full-body strength base for new lifters.",
			Level:       "beginner",
			DurationWks: 8,
			CoachID:     coach.ID,
			CreatedAt:   now,
			Exercises: []models.Exercise{
				{Name: "Goblet Squat", Sets: 3, Reps: 10, RestSecs: 90},
				{Name: "Push-up", Sets: 3, Reps: 12, RestSecs: 60},
				{Name: "Dumbbell Row", Sets: 3, Reps: 10, RestSecs: 90},
			},
		},
		models.WorkoutPlan{
			ID:          uuid.New().String(),
			Title:       "Engine Builder",
			Description: "Aerobic base plus tempo runs for distance athletes.",
			Level:       "intermediate",
			DurationWks: 12,
			CoachID:     coach.ID,
			CreatedAt:   now,
			Exercises: []models.Exercise{
				{Name: "Tempo Run 30min", Sets: 1, Reps: 1, RestSecs: 0},
				{Name: "Walking Lunge", Sets: 3, Reps: 20, RestSecs: 60},
			},
		},
	}
	if _, err := db.Collection("workout_plans").InsertMany(ctx, workouts); err != nil {
		log.Fatalf("Failed to seed workout plans: %v", err)
	}

	nutrition := []interface{}{
		models.NutritionPlan{
			ID:            uuid.New().String(),
			Title:         "Lean Cut 1800",
			Description:   "High-protein deficit template.",
			TotalCalories: 1800,
			CreatedAt:     now,
			Meals: []models.Meal{
				{Name: "Oats and whey", Calories: 450, Protein: 38, Carbs: 55, Fat: 9},
				{Name: "Chicken rice bowl", Calories: 650, Protein: 52, Carbs: 70, Fat: 14},
				{Name: "Salmon and greens", Calories: 700, Protein: 45, Carbs: 30, Fat: 40},
			},
		},
	}
	if _, err := db.Collection("nutrition_plans").InsertMany(ctx, nutrition); err != nil {
		log.Fatalf("Failed to seed nutrition plans: %v", err)
	}

	products := []interface{}{
		models.Product{ID: uuid.New().String(), Name: "Whey Protein 1kg", Description: "Vanilla whey concentrate.", PriceCents: 3499, Currency: "usd", InStock: true, CreatedAt: now},
		models.Product{ID: uuid.New().String(), Name: "Resistance Band Set", Description: "Five bands, light to heavy.", PriceCents: 2199, Currency: "usd", InStock: true, CreatedAt: now},
		models.Product{ID: uuid.New().String(), Name: "Premium Plan Upgrade", Description: "Unlocks the full content catalog for 12 months.", PriceCents: 9900, Currency: "usd", InStock: true, CreatedAt: now},
		models.Product{ID: uuid.New().String(), Name: "Foam Roller", Description: "High-density recovery roller.", PriceCents: 1899, Currency: "usd", InStock: false, CreatedAt: now},
	}
	if _, err := db.Collection("products").InsertMany(ctx, products); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	fmt.Println("Seed complete.")
	fmt.Printf("  admin:  %s / password123\n", admin.Email)
	fmt.Printf("  coach:  %s / password123\n", coach.Email)
	fmt.Printf("  doctor: %s / password123\n", doctor.Email)
	for _, c := range clients {
		fmt.Printf("  client: %s / password123\n", c.Email)
	}
}
