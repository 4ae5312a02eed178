package repository

import (
	"context"

	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotRepository is the durable slot store. The database enforces the
// (doctor_id, date, time) uniqueness constraint server-side; every write
// path may rely on it as the final guard.
type SlotRepository interface {
	// CreateBatch inserts all slots in a single statement. Either the whole
	// batch lands or none of it does.
	CreateBatch(ctx context.Context, db *gorm.DB, slots []*entity.Slot) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Slot, error)
	// FindByKey looks up a slot by its uniqueness key, regardless of status.
	FindByKey(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, timeOfDay string) (*entity.Slot, error)
	FindByDoctor(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Slot, error)
	FindByDoctorAndStatuses(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, statuses ...entity.SlotStatus) ([]entity.Slot, error)
	FindByParent(ctx context.Context, db *gorm.DB, parentID uuid.UUID) ([]entity.Slot, error)
	FindAvailableForDateDay(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, day string) ([]entity.Slot, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Slot, error)

	// BookAvailable atomically flips a matching available slot to booked and
	// attaches the parent, returning the updated slot. Returns nil when no
	// available slot matches the key; two racing callers get exactly one
	// winner because the match and the mutation are a single statement.
	BookAvailable(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, day, timeOfDay string, parentID uuid.UUID) (*entity.Slot, error)

	Update(ctx context.Context, db *gorm.DB, slot *entity.Slot) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	DeleteAvailableByDoctor(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) (int64, error)

	DistinctDoctorIDsForParent(ctx context.Context, db *gorm.DB, parentID uuid.UUID) ([]uuid.UUID, error)
	DistinctParentIDsForDoctor(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error)
}
