package entity

import (
	"time"

	"github.com/google/uuid"
)

// SlotStatus represents the lifecycle state of a bookable slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusCancelled SlotStatus = "cancelled"
	SlotStatusConfirmed SlotStatus = "confirmed"
)

// Slot represents a single bookable time unit owned by one doctor.
// (doctor_id, date, time) is unique across all slots regardless of status;
// the composite index is the authoritative guard, application-level
// pre-flight checks only exist to produce a friendly error.
//
// Date and Day are stored independently with no cross-validation between
// them; Day is whatever the doctor submitted, never derived from Date.
type Slot struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_slots_doctor_date_time" json:"doctor_id"`
	ParentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Date     string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_slots_doctor_date_time" json:"date"` // YYYY-MM-DD
	Day      string     `gorm:"type:varchar(10);not null" json:"day"`
	Time     string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_slots_doctor_date_time" json:"time"` // e.g. "10:00 AM"
	Status   SlotStatus `gorm:"type:slot_status;not null;default:'available';index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Parent *ParentProfile `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
}

func (Slot) TableName() string {
	return "slots"
}

// IsAvailable checks if the slot can be booked
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotStatusAvailable
}

// IsBooked checks if the slot is held by a parent awaiting confirmation
func (s *Slot) IsBooked() bool {
	return s.Status == SlotStatusBooked
}

// IsConfirmed checks if the slot booking was confirmed by the doctor
func (s *Slot) IsConfirmed() bool {
	return s.Status == SlotStatusConfirmed
}

// HasParent reports whether a booking parent is attached
func (s *Slot) HasParent() bool {
	return s.ParentID != nil
}
