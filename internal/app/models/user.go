package models

import (
	"time"
)

// RoleType enumerates user roles
type RoleType string

const (
	RoleStudent  RoleType = "student"
	RoleLandlord RoleType = "landlord"
	RoleAdmin    RoleType = "admin"
)

// IsValidRegistrationRole reports whether a role may be chosen at registration.
// Admin accounts are seeded, never self-registered.
func IsValidRegistrationRole(role RoleType) bool {
	return role == RoleStudent || role == RoleLandlord
}

// User defines the user model based on the 'users' table
type User struct {
	ID          int64     `json:"user_id" db:"user_id"`
	Username    string    `json:"username" db:"username"`
	Email       string    `json:"email" db:"email"`
	Password    string    `json:"-" db:"password_hash"`
	Role        RoleType  `json:"role" db:"role"`
	FullName    string    `json:"full_name" db:"full_name"`
	PhoneNumber *string   `json:"phone_number,omitempty" db:"phone_number"`
	IsVerified  bool      `json:"is_verified" db:"is_verified"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
