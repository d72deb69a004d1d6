package dto

import (
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
)

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Username    string          `json:"username" binding:"required"`
	Email       string          `json:"email" binding:"required,email"`
	Password    string          `json:"password" binding:"required,min=8"`
	Role        models.RoleType `json:"role" binding:"required"`
	FullName    string          `json:"full_name" binding:"required"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
}

// RegisterResponse carries the new account identifier
type RegisterResponse struct {
	UserID int64 `json:"user_id" example:"42"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser is the user summary returned alongside a token
type LoginUser struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Role       models.RoleType `json:"role"`
	Email      string          `json:"email"`
	IsVerified bool            `json:"is_verified"`
}

// LoginResponse carries the signed token and user summary
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}
