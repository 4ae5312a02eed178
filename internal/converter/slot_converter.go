package converter

import (
	"github.com/3bwahab/asd-healthcare-platform/internal/delivery/dto"
	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"

	"github.com/google/uuid"
)

// SlotToResponse converts a Slot entity to SlotResponse DTO
func SlotToResponse(slot *entity.Slot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	response := &dto.SlotResponse{
		ID:        slot.ID,
		DoctorID:  slot.DoctorID,
		ParentID:  slot.ParentID,
		Date:      slot.Date,
		Day:       slot.Day,
		Time:      slot.Time,
		Status:    string(slot.Status),
		CreatedAt: slot.CreatedAt,
		UpdatedAt: slot.UpdatedAt,
	}

	// Include doctor info if preloaded
	if slot.Doctor.UserID != uuid.Nil {
		response.Doctor = DoctorProfileToResponse(&slot.Doctor)
	}

	return response
}

// SlotsToResponses converts a slice of Slot entities to SlotResponse DTOs
func SlotsToResponses(slots []entity.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		resp := SlotToResponse(&slot)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// SlotTimes extracts the display times of a slot collection, in order
func SlotTimes(slots []entity.Slot) []string {
	times := make([]string, len(slots))
	for i, slot := range slots {
		times[i] = slot.Time
	}
	return times
}
