package models

import "time"

// Meal is a single entry in a nutrition plan day.
type Meal struct {
	Name     string  `bson:"name" json:"name"`
	Calories int     `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
}

// NutritionPlan is a daily meal template from the content catalog.
type NutritionPlan struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	TotalCalories int       `bson:"totalCalories" json:"totalCalories"`
	Meals         []Meal    `bson:"meals" json:"meals"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
