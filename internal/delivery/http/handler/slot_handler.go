package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/3bwahab/asd-healthcare-platform/internal/delivery/dto"
	"github.com/3bwahab/asd-healthcare-platform/internal/delivery/http/middleware"
	"github.com/3bwahab/asd-healthcare-platform/internal/usecase"
	"github.com/3bwahab/asd-healthcare-platform/pkg/response"
	"github.com/3bwahab/asd-healthcare-platform/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SlotHandler struct {
	slotUsecase usecase.SlotUsecase
	validator   *validator.CustomValidator
}

func NewSlotHandler(slotUsecase usecase.SlotUsecase, validator *validator.CustomValidator) *SlotHandler {
	return &SlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

// CreateSlots handles a doctor publishing a batch of available slots
func (h *SlotHandler) CreateSlots(w http.ResponseWriter, r *http.Request) {
	doctor, ok := middleware.GetDoctorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Doctor principal not found")
		return
	}

	var req dto.CreateSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slots, err := h.slotUsecase.CreateSlots(r.Context(), doctor.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrSlotConflict):
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create slots")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slots created successfully", slots)
}

// GetMyBooked returns the calling doctor's booked slots
func (h *SlotHandler) GetMyBooked(w http.ResponseWriter, r *http.Request) {
	doctor, ok := middleware.GetDoctorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Doctor principal not found")
		return
	}

	slots, err := h.slotUsecase.GetBooked(r.Context(), doctor.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get booked slots")
		return
	}

	response.Success(w, http.StatusOK, "Booked slots retrieved successfully", slots)
}

// UpdateSlot reschedules one of the calling doctor's slots
func (h *SlotHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	doctor, ok := middleware.GetDoctorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Doctor principal not found")
		return
	}

	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	var req dto.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.slotUsecase.UpdateSlot(r.Context(), doctor.UserID, slotID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotNotFound):
			response.NotFound(w, "Slot not found")
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrNotSlotOwner):
			response.Forbidden(w, "You are not authorized to update this slot")
		case errors.Is(err, usecase.ErrSlotConflict):
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot updated successfully", slot)
}

// DeleteSlot removes one of the calling doctor's slots, any status
func (h *SlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	doctor, ok := middleware.GetDoctorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Doctor principal not found")
		return
	}

	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	if err := h.slotUsecase.DeleteSlot(r.Context(), doctor.UserID, slotID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotNotFound):
			response.NotFound(w, "Slot not found")
		case errors.Is(err, usecase.ErrNotSlotOwner):
			response.Forbidden(w, "You are not authorized to delete this slot")
		default:
			response.InternalServerError(w, "Failed to delete slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot deleted successfully", nil)
}

// DeleteAllAvailable bulk-deletes the calling doctor's available slots
func (h *SlotHandler) DeleteAllAvailable(w http.ResponseWriter, r *http.Request) {
	doctor, ok := middleware.GetDoctorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Doctor principal not found")
		return
	}

	deleted, err := h.slotUsecase.DeleteAllAvailable(r.Context(), doctor.UserID)
	if err != nil {
		response.InternalServerError(w, "Failed to delete available slots")
		return
	}

	response.Success(w, http.StatusOK, "All available slots deleted successfully", dto.DeletedSlotsResponse{Deleted: deleted})
}

// ConfirmSlot marks a booked slot as confirmed by its owning doctor
func (h *SlotHandler) ConfirmSlot(w http.ResponseWriter, r *http.Request) {
	doctor, ok := middleware.GetDoctorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Doctor principal not found")
		return
	}

	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	slot, err := h.slotUsecase.Confirm(r.Context(), doctor.UserID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotNotFound):
			response.NotFound(w, "Slot not found")
		case errors.Is(err, usecase.ErrNotSlotOwner):
			response.Forbidden(w, "You are not authorized to confirm this slot")
		case errors.Is(err, usecase.ErrSlotNotBooked):
			response.Error(w, http.StatusBadRequest, "No parent has booked this slot yet", nil)
		default:
			response.InternalServerError(w, "Failed to confirm slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot confirmed successfully", slot)
}

// GetMyParents lists the distinct parents holding a booked slot with the doctor
func (h *SlotHandler) GetMyParents(w http.ResponseWriter, r *http.Request) {
	doctor, ok := middleware.GetDoctorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Doctor principal not found")
		return
	}

	parents, err := h.slotUsecase.ListParentsForDoctor(r.Context(), doctor.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoParentsForDoctor) {
			response.NotFound(w, "No parents found for this doctor")
			return
		}
		response.InternalServerError(w, "Failed to get parents")
		return
	}

	response.Success(w, http.StatusOK, "Parents retrieved successfully", parents)
}

// BookSlot claims an available slot for the calling parent
func (h *SlotHandler) BookSlot(w http.ResponseWriter, r *http.Request) {
	parent, ok := middleware.GetParentFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Parent principal not found")
		return
	}

	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.BookSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.slotUsecase.Book(r.Context(), parent.UserID, doctorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrSlotNotAvailable):
			response.NotFound(w, "Selected time slot is not available")
		default:
			response.InternalServerError(w, "Failed to book slot")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slot booked successfully", slot)
}

// CancelSlot resets a slot booked by the calling parent back to available
func (h *SlotHandler) CancelSlot(w http.ResponseWriter, r *http.Request) {
	parent, ok := middleware.GetParentFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Parent principal not found")
		return
	}

	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	slot, err := h.slotUsecase.Cancel(r.Context(), parent.UserID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotNotFound):
			response.NotFound(w, "Slot not found")
		case errors.Is(err, usecase.ErrNotBookingOwner):
			response.Forbidden(w, "You are not authorized to cancel this slot")
		default:
			response.InternalServerError(w, "Failed to cancel slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot cancelled successfully", slot)
}

// GetMySlots returns every slot attached to the calling parent
func (h *SlotHandler) GetMySlots(w http.ResponseWriter, r *http.Request) {
	parent, ok := middleware.GetParentFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Parent principal not found")
		return
	}

	slots, err := h.slotUsecase.ListForParent(r.Context(), parent.UserID)
	if err != nil {
		response.InternalServerError(w, "Failed to get slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

// GetMyDoctors lists the distinct doctors the calling parent has booked with
func (h *SlotHandler) GetMyDoctors(w http.ResponseWriter, r *http.Request) {
	parent, ok := middleware.GetParentFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Parent principal not found")
		return
	}

	doctors, err := h.slotUsecase.ListDoctorsForParent(r.Context(), parent.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoDoctorsForParent) {
			response.NotFound(w, "No doctors found for this parent")
			return
		}
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetAvailable returns a doctor's bookable slots (public discovery)
func (h *SlotHandler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	slots, err := h.slotUsecase.GetAvailable(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get available slots")
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

// GetTimes returns a doctor's slot times, optionally filtered by ?status=
func (h *SlotHandler) GetTimes(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	status := r.URL.Query().Get("status")

	times, err := h.slotUsecase.ListAllTimes(r.Context(), doctorID, status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSlotStatus):
			response.Error(w, http.StatusBadRequest, "Invalid slot status", nil)
		case errors.Is(err, usecase.ErrNoTimesForDoctor):
			response.NotFound(w, "No times found for this doctor")
		default:
			response.InternalServerError(w, "Failed to get times")
		}
		return
	}

	response.Success(w, http.StatusOK, "Times retrieved successfully", times)
}

// SearchAvailableTimes returns available times on ?date=&day= for a doctor
func (h *SlotHandler) SearchAvailableTimes(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	day := r.URL.Query().Get("day")
	if date == "" || day == "" {
		response.Error(w, http.StatusBadRequest, "Both date and day query parameters are required", nil)
		return
	}

	times, err := h.slotUsecase.ListAvailableTimesForDateDay(r.Context(), doctorID, date, day)
	if err != nil {
		if errors.Is(err, usecase.ErrNoTimesForDoctor) {
			response.NotFound(w, "No available times for the given date and day")
			return
		}
		response.InternalServerError(w, "Failed to search times")
		return
	}

	response.Success(w, http.StatusOK, "Available times retrieved successfully", times)
}

// GetAllSlots returns every slot in the system (admin)
func (h *SlotHandler) GetAllSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotUsecase.GetAllSlots(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}
