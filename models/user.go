package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAgent UserRole = "AGENT"
	RoleAdmin UserRole = "ADMIN"
)

type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
)

// User represents a platform account. Agents are users with RoleAgent.
type User struct {
	ID           string          `bson:"id" json:"id"`
	Name         string          `bson:"name" json:"name"`
	Email        string          `bson:"email" json:"email"`
	PasswordHash string          `bson:"password_hash" json:"-"`
	Phone        string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         UserRole        `bson:"role" json:"role"`
	Status       UserStatus      `bson:"status" json:"status"`
	Preferences  UserPreferences `bson:"preferences,omitempty" json:"preferences,omitempty"`
	CreatedAt    time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updated_at" json:"updatedAt"`
}

// UserPreferences holds the profile signals that feed destination
// recommendations. Weights run 0..100.
type UserPreferences struct {
	PersonalityWeights map[string]float64 `bson:"personality_weights,omitempty" json:"personalityWeights,omitempty"`
	CategoryWeights    map[string]float64 `bson:"category_weights,omitempty" json:"categoryWeights,omitempty"`
	Wishlist           []string           `bson:"wishlist,omitempty" json:"wishlist,omitempty"`
	ViewedDestinations []string           `bson:"viewed_destinations,omitempty" json:"viewedDestinations,omitempty"`
}

// IsActiveAgent reports whether the user can receive booking assignments.
func (u *User) IsActiveAgent() bool {
	return u.Role == RoleAgent && u.Status == UserActive
}
