package usecase

import (
	"context"
	"errors"

	"github.com/3bwahab/asd-healthcare-platform/internal/converter"
	"github.com/3bwahab/asd-healthcare-platform/internal/delivery/dto"
	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"
	"github.com/3bwahab/asd-healthcare-platform/internal/domain/repository"
	"github.com/3bwahab/asd-healthcare-platform/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrParentNotFound = errors.New("parent not found")
)

type ParentProfileUsecase interface {
	GetParent(ctx context.Context, parentID uuid.UUID) (*dto.ParentResponse, error)
	UpdateSelfProfile(ctx context.Context, parentID uuid.UUID, req *dto.ParentUpdateSelfRequest) (*dto.ParentResponse, error)
}

type parentProfileUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	parentProfileRepo repository.ParentProfileRepository
	auditService      service.AuditService
}

func NewParentProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	parentProfileRepo repository.ParentProfileRepository,
	auditService service.AuditService,
) ParentProfileUsecase {
	return &parentProfileUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		parentProfileRepo: parentProfileRepo,
		auditService:      auditService,
	}
}

func (u *parentProfileUsecase) GetParent(ctx context.Context, parentID uuid.UUID) (*dto.ParentResponse, error) {
	profile, err := u.parentProfileRepo.FindByUserID(u.db.WithContext(ctx), parentID)
	if err != nil {
		u.log.Warnf("Failed to find parent %s: %+v", parentID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrParentNotFound
	}

	return converter.ParentProfileToResponse(profile), nil
}

func (u *parentProfileUsecase) UpdateSelfProfile(ctx context.Context, parentID uuid.UUID, req *dto.ParentUpdateSelfRequest) (*dto.ParentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.parentProfileRepo.FindByUserID(tx, parentID)
	if err != nil {
		u.log.Warnf("Failed to find parent %s: %+v", parentID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrParentNotFound
	}

	oldValue := converter.ParentProfileToResponse(profile)

	if req.FullName != "" {
		profile.User.FullName = req.FullName
		if err := u.userRepo.Update(tx, &profile.User); err != nil {
			u.log.Warnf("Failed to update user %s: %+v", parentID, err)
			return nil, err
		}
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Address != "" {
		profile.Address = req.Address
	}

	if err := u.parentProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update parent profile %s: %+v", parentID, err)
		return nil, err
	}

	newValue := converter.ParentProfileToResponse(profile)
	_ = u.auditService.LogUpdate(ctx, tx, &parentID, entity.AuditActionProfileUpdate, "parent_profile", parentID.String(), oldValue, newValue)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}
