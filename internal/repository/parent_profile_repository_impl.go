package repository

import (
	"errors"

	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"
	domainRepo "github.com/3bwahab/asd-healthcare-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type parentProfileRepository struct{}

func NewParentProfileRepository() domainRepo.ParentProfileRepository {
	return &parentProfileRepository{}
}

func (r *parentProfileRepository) Create(db *gorm.DB, profile *entity.ParentProfile) error {
	return db.Create(profile).Error
}

func (r *parentProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ParentProfile, error) {
	var profile entity.ParentProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *parentProfileRepository) FindByUserIDs(db *gorm.DB, userIDs []uuid.UUID) ([]entity.ParentProfile, error) {
	var profiles []entity.ParentProfile
	err := db.Preload("User").Where("user_id IN ?", userIDs).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *parentProfileRepository) Update(db *gorm.DB, profile *entity.ParentProfile) error {
	return db.Omit("User").Save(profile).Error
}
