package models

import "time"

// User is an account on the platform. Coaches, medical professionals and
// admins share this document with a different role.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	PhoneNumber  string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Status       string    `bson:"status" json:"status"` // active | inactive | trial
	Goal         string    `bson:"goal,omitempty" json:"goal,omitempty"`
	Weight       float64   `bson:"weight,omitempty" json:"weight,omitempty"`
	Height       float64   `bson:"height,omitempty" json:"height,omitempty"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RosterRecordFromUser projects a user document onto the roster summary shape.
func RosterRecordFromUser(u User) RosterRecord {
	return RosterRecord{
		ID:        u.ID,
		Name:      u.Username,
		Email:     u.Email,
		Status:    u.Status,
		Goal:      u.Goal,
		AvatarURL: u.ProfileImage,
		Weight:    u.Weight,
	}
}

// UserRegistration is the signup request payload.
type UserRegistration struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
	Goal     string `json:"goal"`
}

// UserCredentials is the login request payload.
type UserCredentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
