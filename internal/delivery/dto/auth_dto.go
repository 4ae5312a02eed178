package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterParentRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2,max=50"`
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=20"`
	Age         int    `json:"age" validate:"required,gte=18"`
	Address     string `json:"address" validate:"required"`
}

type RegisterDoctorRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=6"`
	FullName       string  `json:"full_name" validate:"required,min=2,max=50"`
	Specialization string  `json:"specialization" validate:"required"`
	Qualifications string  `json:"qualifications" validate:"required"`
	MedicalLicense string  `json:"medical_license" validate:"required"`
	SessionPrice   float64 `json:"session_price" validate:"required,gte=0"`
	Biography      string  `json:"biography" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID            uuid.UUID       `json:"id"`
	Email         string          `json:"email"`
	FullName      string          `json:"full_name"`
	Role          string          `json:"role"`
	DoctorProfile *DoctorResponse `json:"doctor_profile,omitempty"`
	ParentProfile *ParentResponse `json:"parent_profile,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
