package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// SlotInput is one candidate slot in a creation batch
type SlotInput struct {
	Date string `json:"date" validate:"required,len=10"` // YYYY-MM-DD
	Day  string `json:"day" validate:"required"`
	Time string `json:"time" validate:"required"`
}

type CreateSlotsRequest struct {
	AvailableSlots []SlotInput `json:"available_slots" validate:"required,min=1,dive"`
}

type BookSlotRequest struct {
	Date string `json:"date" validate:"required,len=10"`
	Day  string `json:"day" validate:"required"`
	Time string `json:"time" validate:"required"`
}

// UpdateSlotRequest reschedules a slot; empty fields keep their value
type UpdateSlotRequest struct {
	Date string `json:"date" validate:"omitempty,len=10"`
	Day  string `json:"day" validate:"omitempty"`
	Time string `json:"time" validate:"omitempty"`
}

// Response DTOs

type SlotResponse struct {
	ID        uuid.UUID       `json:"id"`
	DoctorID  uuid.UUID       `json:"doctor_id"`
	ParentID  *uuid.UUID      `json:"parent_id,omitempty"`
	Date      string          `json:"date"`
	Day       string          `json:"day"`
	Time      string          `json:"time"`
	Status    string          `json:"status"`
	Doctor    *DoctorResponse `json:"doctor,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

type SlotTimesResponse struct {
	Times []string `json:"times"`
	Total int      `json:"total"`
}

type DeletedSlotsResponse struct {
	Deleted int64 `json:"deleted"`
}
