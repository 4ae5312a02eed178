package service

import (
	"context"
	"fmt"

	"github.com/3bwahab/asd-healthcare-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotKey is the uniqueness key of a candidate slot. Day rides along for
// error messages but is not part of the stored constraint.
type SlotKey struct {
	Date string
	Day  string
	Time string
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%s - %s - %s", k.Date, k.Day, k.Time)
}

// ConflictChecker pre-flights a candidate batch of slots for one doctor
// against the store. It exists to produce a friendly, typed error before
// any insert happens; the database unique index remains the sole
// correctness guarantee against concurrent writers.
type ConflictChecker struct {
	slotRepo repository.SlotRepository
}

func NewConflictChecker(slotRepo repository.SlotRepository) *ConflictChecker {
	return &ConflictChecker{slotRepo: slotRepo}
}

// FirstConflict returns the first candidate whose (doctor, date, time) is
// already occupied, either by a stored slot of any status or by an earlier
// entry in the same batch. Returns nil when the whole batch is clear.
func (c *ConflictChecker) FirstConflict(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, candidates []SlotKey) (*SlotKey, error) {
	seen := make(map[string]struct{}, len(candidates))

	for _, candidate := range candidates {
		key := candidate.Date + "|" + candidate.Time
		if _, dup := seen[key]; dup {
			return &candidate, nil
		}
		seen[key] = struct{}{}

		existing, err := c.slotRepo.FindByKey(ctx, db, doctorID, candidate.Date, candidate.Time)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &candidate, nil
		}
	}

	return nil, nil
}
