package entity

import "github.com/google/uuid"

// ParentProfile represents caregiver-specific profile data
type ParentProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber string    `gorm:"type:varchar(20);not null;index" json:"phone_number"`
	Age         int       `gorm:"not null" json:"age"`
	Address     string    `gorm:"type:text;not null" json:"address"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Slots []Slot `gorm:"foreignKey:ParentID" json:"slots,omitempty"`
}

func (ParentProfile) TableName() string {
	return "parent_profiles"
}
