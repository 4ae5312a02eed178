package dto

import (
	"github.com/google/uuid"
)

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Specialization string    `json:"specialization"`
	Qualifications string    `json:"qualifications"`
	MedicalLicense string    `json:"medical_license"`
	SessionPrice   float64   `json:"session_price"`
	Biography      string    `json:"biography,omitempty"`
	IsActive       *bool     `json:"is_active,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// DoctorUpdateSelfRequest lets a doctor edit their own profile
type DoctorUpdateSelfRequest struct {
	FullName       string   `json:"full_name" validate:"omitempty,min=2"`
	Specialization string   `json:"specialization" validate:"omitempty"`
	Qualifications string   `json:"qualifications" validate:"omitempty"`
	SessionPrice   *float64 `json:"session_price" validate:"omitempty,gte=0"`
	Biography      string   `json:"biography" validate:"omitempty"`
}
