package models

import "time"

// Exercise is a single movement inside a workout plan.
type Exercise struct {
	Name     string `bson:"name" json:"name"`
	Sets     int    `bson:"sets" json:"sets"`
	Reps     int    `bson:"reps" json:"reps"`
	RestSecs int    `bson:"restSecs" json:"restSecs"`
	VideoURL string `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
}

// WorkoutPlan is a multi-day training program from the content catalog.
type WorkoutPlan struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Level       string     `bson:"level" json:"level"` // beginner | intermediate | advanced
	DurationWks int        `bson:"durationWks" json:"durationWks"`
	Exercises   []Exercise `bson:"exercises" json:"exercises"`
	CoachID     string     `bson:"coachId,omitempty" json:"coachId,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}

// PlanAssignment ties a catalog plan to a client, set by their coach.
type PlanAssignment struct {
	ID         string    `bson:"id" json:"id"`
	PlanID     string    `bson:"planId" json:"planId"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	AssignedBy string    `bson:"assignedBy" json:"assignedBy"`
	StartsAt   time.Time `bson:"startsAt" json:"startsAt"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for workout-session reminders.
type ReminderPayload struct {
	UserID    string    `json:"userId"`
	PlanID    string    `json:"planId"`
	PlanTitle string    `json:"planTitle"`
	SessionAt time.Time `json:"sessionAt"`
}
