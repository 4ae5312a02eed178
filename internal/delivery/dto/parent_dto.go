package dto

import (
	"github.com/google/uuid"
)

type ParentResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Age         int       `json:"age"`
	Address     string    `json:"address"`
}

type ParentListResponse struct {
	Parents []ParentResponse `json:"parents"`
	Total   int              `json:"total"`
}

// ParentUpdateSelfRequest lets a parent edit their own profile
type ParentUpdateSelfRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Age         *int   `json:"age" validate:"omitempty,gte=18"`
	Address     string `json:"address" validate:"omitempty"`
}
