package repository

import (
	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParentProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ParentProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ParentProfile, error)
	FindByUserIDs(db *gorm.DB, userIDs []uuid.UUID) ([]entity.ParentProfile, error)
	Update(db *gorm.DB, profile *entity.ParentProfile) error
}
