package service

import (
	"context"
	"errors"
	"testing"

	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubSlotStore implements only the lookup the checker uses; everything
// else panics to catch accidental calls.
type stubSlotStore struct {
	stubSlotRepository
	stored map[string]*entity.Slot
	err    error
}

func (s *stubSlotStore) FindByKey(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, timeOfDay string) (*entity.Slot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.stored[doctorID.String()+"|"+date+"|"+timeOfDay], nil
}

type stubSlotRepository struct{}

func (stubSlotRepository) CreateBatch(ctx context.Context, db *gorm.DB, slots []*entity.Slot) error {
	panic("not implemented")
}
func (stubSlotRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Slot, error) {
	panic("not implemented")
}
func (stubSlotRepository) FindByKey(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, timeOfDay string) (*entity.Slot, error) {
	panic("not implemented")
}
func (stubSlotRepository) FindByDoctor(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Slot, error) {
	panic("not implemented")
}
func (stubSlotRepository) FindByDoctorAndStatuses(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, statuses ...entity.SlotStatus) ([]entity.Slot, error) {
	panic("not implemented")
}
func (stubSlotRepository) FindByParent(ctx context.Context, db *gorm.DB, parentID uuid.UUID) ([]entity.Slot, error) {
	panic("not implemented")
}
func (stubSlotRepository) FindAvailableForDateDay(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, day string) ([]entity.Slot, error) {
	panic("not implemented")
}
func (stubSlotRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Slot, error) {
	panic("not implemented")
}
func (stubSlotRepository) BookAvailable(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, date, day, timeOfDay string, parentID uuid.UUID) (*entity.Slot, error) {
	panic("not implemented")
}
func (stubSlotRepository) Update(ctx context.Context, db *gorm.DB, slot *entity.Slot) error {
	panic("not implemented")
}
func (stubSlotRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	panic("not implemented")
}
func (stubSlotRepository) DeleteAvailableByDoctor(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	panic("not implemented")
}
func (stubSlotRepository) DistinctDoctorIDsForParent(ctx context.Context, db *gorm.DB, parentID uuid.UUID) ([]uuid.UUID, error) {
	panic("not implemented")
}
func (stubSlotRepository) DistinctParentIDsForDoctor(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error) {
	panic("not implemented")
}

func TestFirstConflict(t *testing.T) {
	ctx := context.Background()
	doctorID := uuid.New()

	t.Run("clear batch", func(t *testing.T) {
		checker := NewConflictChecker(&stubSlotStore{stored: map[string]*entity.Slot{}})
		conflict, err := checker.FirstConflict(ctx, nil, doctorID, []SlotKey{
			{Date: "2026-09-07", Day: "Monday", Time: "10:00 AM"},
			{Date: "2026-09-07", Day: "Monday", Time: "11:00 AM"},
		})
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("stored slot collides", func(t *testing.T) {
		checker := NewConflictChecker(&stubSlotStore{stored: map[string]*entity.Slot{
			doctorID.String() + "|2026-09-07|11:00 AM": {DoctorID: doctorID},
		}})
		conflict, err := checker.FirstConflict(ctx, nil, doctorID, []SlotKey{
			{Date: "2026-09-07", Day: "Monday", Time: "10:00 AM"},
			{Date: "2026-09-07", Day: "Monday", Time: "11:00 AM"},
		})
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, "11:00 AM", conflict.Time)
	})

	t.Run("duplicate within the batch", func(t *testing.T) {
		checker := NewConflictChecker(&stubSlotStore{stored: map[string]*entity.Slot{}})
		conflict, err := checker.FirstConflict(ctx, nil, doctorID, []SlotKey{
			{Date: "2026-09-07", Day: "Monday", Time: "10:00 AM"},
			{Date: "2026-09-07", Day: "Monday", Time: "10:00 AM"},
		})
		require.NoError(t, err)
		require.NotNil(t, conflict)
	})

	t.Run("day label is not part of the key", func(t *testing.T) {
		checker := NewConflictChecker(&stubSlotStore{stored: map[string]*entity.Slot{}})
		conflict, err := checker.FirstConflict(ctx, nil, doctorID, []SlotKey{
			{Date: "2026-09-07", Day: "Monday", Time: "10:00 AM"},
			{Date: "2026-09-07", Day: "Tuesday", Time: "10:00 AM"},
		})
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, "Tuesday", conflict.Day)
	})

	t.Run("lookup errors propagate", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		checker := NewConflictChecker(&stubSlotStore{err: storeErr})
		_, err := checker.FirstConflict(ctx, nil, doctorID, []SlotKey{
			{Date: "2026-09-07", Day: "Monday", Time: "10:00 AM"},
		})
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestSlotKeyString(t *testing.T) {
	key := SlotKey{Date: "2026-09-07", Day: "Monday", Time: "10:00 AM"}
	assert.Equal(t, "2026-09-07 - Monday - 10:00 AM", key.String())
}
