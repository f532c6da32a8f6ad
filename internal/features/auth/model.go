package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user in the system. The professional
// attribute fields (interests, goals, strengths, location, industry,
// experienceYears, lastActiveAt) are the inputs of the recommendation
// scorer.
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GoogleID        string             `bson:"googleId,omitempty" json:"-"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password,omitempty" json:"-"`
	Name            string             `bson:"name" json:"name"`
	Headline        string             `bson:"headline" json:"headline"`
	Bio             string             `bson:"bio" json:"bio"`
	Location        string             `bson:"location" json:"location"`
	Industry        string             `bson:"industry" json:"industry"`
	ExperienceYears int                `bson:"experienceYears" json:"experienceYears"`
	LinkedinURL     string             `bson:"linkedinUrl" json:"linkedinUrl"`
	Interests       []string           `bson:"interests" json:"interests"`
	Goals           []string           `bson:"goals" json:"goals"`
	Strengths       []string           `bson:"strengths" json:"strengths"`
	LastActiveAt    time.Time          `bson:"lastActiveAt" json:"lastActiveAt"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthRequest is the payload for POST /auth/google
type GoogleAuthRequest struct {
	GoogleIDToken string `json:"googleIdToken" binding:"required"`
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}

// UpdateProfileRequest is the payload for PATCH /users/me
type UpdateProfileRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=2,max=50"`
	Headline        *string  `json:"headline" binding:"omitempty,max=120"`
	Bio             *string  `json:"bio" binding:"omitempty,max=500"`
	Location        *string  `json:"location" binding:"omitempty,max=80"`
	Industry        *string  `json:"industry" binding:"omitempty,max=80"`
	ExperienceYears *int     `json:"experienceYears" binding:"omitempty,min=0,max=60"`
	LinkedinURL     *string  `json:"linkedinUrl" binding:"omitempty,max=200"`
	Goals           []string `json:"goals" binding:"omitempty,max=10,dive,min=2,max=40"`
	Strengths       []string `json:"strengths" binding:"omitempty,max=10,dive,min=2,max=40"`
}

// ToPublicUser returns the fields safe for public display
func (u *User) ToPublicUser() map[string]interface{} {
	return map[string]interface{}{
		"id":              u.ID,
		"name":            u.Name,
		"headline":        u.Headline,
		"bio":             u.Bio,
		"location":        u.Location,
		"industry":        u.Industry,
		"experienceYears": u.ExperienceYears,
		"linkedinUrl":     u.LinkedinURL,
		"interests":       u.Interests,
		"goals":           u.Goals,
		"strengths":       u.Strengths,
		"joinedAt":        u.CreatedAt,
	}
}
