package repository

import (
	"context"
	"errors"

	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"
	domainRepo "github.com/3bwahab/asd-healthcare-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type slotRepository struct{}

func NewSlotRepository() domainRepo.SlotRepository {
	return &slotRepository{}
}

func (r *slotRepository) CreateBatch(ctx context.Context, db *gorm.DB, slots []*entity.Slot) error {
	if len(slots) == 0 {
		return nil
	}
	// Single INSERT; the whole batch fails together on a constraint violation
	return db.WithContext(ctx).Create(&slots).Error
}

func (r *slotRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Slot, error) {
	var slot entity.Slot
	err := db.WithContext(ctx).Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) FindByKey(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, timeOfDay string) (*entity.Slot, error) {
	var slot entity.Slot
	err := db.WithContext(ctx).
		Where("doctor_id = ? AND date = ? AND time = ?", doctorID, date, timeOfDay).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) FindByDoctor(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("date ASC, created_at ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *slotRepository) FindByDoctorAndStatuses(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, statuses ...entity.SlotStatus) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := db.WithContext(ctx).
		Where("doctor_id = ? AND status IN ?", doctorID, statuses).
		Order("date ASC, created_at ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *slotRepository) FindByParent(ctx context.Context, db *gorm.DB, parentID uuid.UUID) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := db.WithContext(ctx).
		Preload("Doctor.User").
		Where("parent_id = ?", parentID).
		Order("date ASC, created_at ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *slotRepository) FindAvailableForDateDay(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, day string) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := db.WithContext(ctx).
		Where("doctor_id = ? AND date = ? AND day = ? AND status = ?",
			doctorID, date, day, entity.SlotStatusAvailable).
		Order("created_at ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *slotRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := db.WithContext(ctx).Order("date ASC, created_at ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// BookAvailable performs the match and the mutation as one UPDATE so that
// concurrent bookers of the same key get exactly one winner.
func (r *slotRepository) BookAvailable(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, day, timeOfDay string, parentID uuid.UUID) (*entity.Slot, error) {
	var slots []entity.Slot
	result := db.WithContext(ctx).
		Model(&slots).
		Clauses(clause.Returning{}).
		Where("doctor_id = ? AND date = ? AND day = ? AND time = ? AND status = ?",
			doctorID, date, day, timeOfDay, entity.SlotStatusAvailable).
		Updates(map[string]interface{}{
			"status":    entity.SlotStatusBooked,
			"parent_id": parentID,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 || len(slots) == 0 {
		return nil, nil
	}
	return &slots[0], nil
}

func (r *slotRepository) Update(ctx context.Context, db *gorm.DB, slot *entity.Slot) error {
	return db.WithContext(ctx).Omit("Doctor", "Parent").Save(slot).Error
}

func (r *slotRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Slot{})
	return result.RowsAffected, result.Error
}

func (r *slotRepository) DeleteAvailableByDoctor(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).
		Where("doctor_id = ? AND status = ?", doctorID, entity.SlotStatusAvailable).
		Delete(&entity.Slot{})
	return result.RowsAffected, result.Error
}

func (r *slotRepository) DistinctDoctorIDsForParent(ctx context.Context, db *gorm.DB, parentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.WithContext(ctx).
		Model(&entity.Slot{}).
		Distinct("doctor_id").
		Where("parent_id = ? AND status = ?", parentID, entity.SlotStatusBooked).
		Pluck("doctor_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *slotRepository) DistinctParentIDsForDoctor(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.WithContext(ctx).
		Model(&entity.Slot{}).
		Distinct("parent_id").
		Where("doctor_id = ? AND status = ? AND parent_id IS NOT NULL", doctorID, entity.SlotStatusBooked).
		Pluck("parent_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
