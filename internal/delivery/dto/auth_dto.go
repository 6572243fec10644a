package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// SignupRequest carries both role variants; role-specific required fields
// (institution_name for hospitals, specialization for doctors) are enforced
// in the usecase once the role is known.
type SignupRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Role            string `json:"role" validate:"required"`
	InstitutionName string `json:"institution_name" validate:"omitempty"`
	Specialization  string `json:"specialization" validate:"omitempty"`
	Bio             string `json:"bio" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UserResponse flattens the role-specific profile fields the way the API
// has always exposed them.
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	InstitutionName string    `json:"institution_name,omitempty"`
	Specialization  string    `json:"specialization,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuthResponse is returned by signup and login: the user is handed tokens
// immediately so the frontend can log them straight in.
type AuthResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
}
