package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Qualifications string    `gorm:"type:text;not null" json:"qualifications"`
	MedicalLicense string    `gorm:"type:varchar(255);not null" json:"medical_license"`
	SessionPrice   float64   `gorm:"type:numeric(10,2);not null" json:"session_price"`
	Biography      string    `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Slots []Slot `gorm:"foreignKey:DoctorID" json:"slots,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
