package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/3bwahab/asd-healthcare-platform/internal/delivery/dto"
	"github.com/3bwahab/asd-healthcare-platform/internal/delivery/http/middleware"
	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"
	"github.com/3bwahab/asd-healthcare-platform/internal/usecase"
	"github.com/3bwahab/asd-healthcare-platform/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSlotUsecase returns canned results per operation; err wins over value.
type stubSlotUsecase struct {
	createErr  error
	bookErr    error
	bookResult *dto.SlotResponse
	confirmErr error
	cancelErr  error
	updateErr  error
	deleteErr  error
}

func (s *stubSlotUsecase) CreateSlots(ctx context.Context, doctorID uuid.UUID, req *dto.CreateSlotsRequest) (*dto.SlotListResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &dto.SlotListResponse{Total: len(req.AvailableSlots)}, nil
}

func (s *stubSlotUsecase) Book(ctx context.Context, parentID, doctorID uuid.UUID, req *dto.BookSlotRequest) (*dto.SlotResponse, error) {
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	return s.bookResult, nil
}

func (s *stubSlotUsecase) Confirm(ctx context.Context, doctorID, slotID uuid.UUID) (*dto.SlotResponse, error) {
	if s.confirmErr != nil {
		return nil, s.confirmErr
	}
	return &dto.SlotResponse{ID: slotID, Status: string(entity.SlotStatusConfirmed)}, nil
}

func (s *stubSlotUsecase) Cancel(ctx context.Context, parentID, slotID uuid.UUID) (*dto.SlotResponse, error) {
	if s.cancelErr != nil {
		return nil, s.cancelErr
	}
	return &dto.SlotResponse{ID: slotID, Status: string(entity.SlotStatusAvailable)}, nil
}

func (s *stubSlotUsecase) UpdateSlot(ctx context.Context, doctorID, slotID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &dto.SlotResponse{ID: slotID}, nil
}

func (s *stubSlotUsecase) DeleteSlot(ctx context.Context, doctorID, slotID uuid.UUID) error {
	return s.deleteErr
}

func (s *stubSlotUsecase) DeleteAllAvailable(ctx context.Context, doctorID uuid.UUID) (int64, error) {
	return 3, nil
}

func (s *stubSlotUsecase) GetAvailable(ctx context.Context, doctorID uuid.UUID) (*dto.SlotListResponse, error) {
	return &dto.SlotListResponse{}, nil
}

func (s *stubSlotUsecase) GetBooked(ctx context.Context, doctorID uuid.UUID) (*dto.SlotListResponse, error) {
	return &dto.SlotListResponse{}, nil
}

func (s *stubSlotUsecase) GetAllSlots(ctx context.Context) (*dto.SlotListResponse, error) {
	return &dto.SlotListResponse{}, nil
}

func (s *stubSlotUsecase) ListForParent(ctx context.Context, parentID uuid.UUID) (*dto.SlotListResponse, error) {
	return &dto.SlotListResponse{}, nil
}

func (s *stubSlotUsecase) ListAllTimes(ctx context.Context, doctorID uuid.UUID, status string) (*dto.SlotTimesResponse, error) {
	return &dto.SlotTimesResponse{}, nil
}

func (s *stubSlotUsecase) ListAvailableTimesForDateDay(ctx context.Context, doctorID uuid.UUID, date, day string) (*dto.SlotTimesResponse, error) {
	return &dto.SlotTimesResponse{}, nil
}

func (s *stubSlotUsecase) ListDoctorsForParent(ctx context.Context, parentID uuid.UUID) (*dto.DoctorListResponse, error) {
	return &dto.DoctorListResponse{}, nil
}

func (s *stubSlotUsecase) ListParentsForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ParentListResponse, error) {
	return &dto.ParentListResponse{}, nil
}

func doctorRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(req.Context(), middleware.PrincipalKey, entity.DoctorPrincipal{UserID: uuid.New()})
	return req.WithContext(ctx)
}

func parentRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(req.Context(), middleware.PrincipalKey, entity.ParentPrincipal{UserID: uuid.New()})
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestCreateSlotsHandler(t *testing.T) {
	validBody := dto.CreateSlotsRequest{
		AvailableSlots: []dto.SlotInput{{Date: "2026-09-07", Day: "Monday", Time: "10:00 AM"}},
	}

	t.Run("created", func(t *testing.T) {
		h := NewSlotHandler(&stubSlotUsecase{}, validator.NewValidator())
		rec := httptest.NewRecorder()
		h.CreateSlots(rec, doctorRequest(http.MethodPost, "/doctor/slots", validBody))

		assert.Equal(t, http.StatusCreated, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, true, envelope["success"])
	})

	t.Run("conflict maps to 409 and names the entry", func(t *testing.T) {
		conflictErr := fmt.Errorf("%w: 2026-09-07 - Monday - 10:00 AM", usecase.ErrSlotConflict)
		h := NewSlotHandler(&stubSlotUsecase{createErr: conflictErr}, validator.NewValidator())
		rec := httptest.NewRecorder()
		h.CreateSlots(rec, doctorRequest(http.MethodPost, "/doctor/slots", validBody))

		assert.Equal(t, http.StatusConflict, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.Contains(t, envelope["message"], "2026-09-07 - Monday - 10:00 AM")
	})

	t.Run("unknown doctor maps to 404", func(t *testing.T) {
		h := NewSlotHandler(&stubSlotUsecase{createErr: usecase.ErrDoctorNotFound}, validator.NewValidator())
		rec := httptest.NewRecorder()
		h.CreateSlots(rec, doctorRequest(http.MethodPost, "/doctor/slots", validBody))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty batch fails validation", func(t *testing.T) {
		h := NewSlotHandler(&stubSlotUsecase{}, validator.NewValidator())
		rec := httptest.NewRecorder()
		h.CreateSlots(rec, doctorRequest(http.MethodPost, "/doctor/slots", dto.CreateSlotsRequest{}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no doctor principal", func(t *testing.T) {
		h := NewSlotHandler(&stubSlotUsecase{}, validator.NewValidator())
		rec := httptest.NewRecorder()
		h.CreateSlots(rec, parentRequest(http.MethodPost, "/doctor/slots", validBody))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBookSlotHandler(t *testing.T) {
	doctorID := uuid.New()
	target := "/parent/doctors/" + doctorID.String() + "/book"
	body := dto.BookSlotRequest{Date: "2026-09-07", Day: "Monday", Time: "10:00 AM"}

	withVars := func(req *http.Request) *http.Request {
		return mux.SetURLVars(req, map[string]string{"doctorId": doctorID.String()})
	}

	t.Run("booked", func(t *testing.T) {
		stub := &stubSlotUsecase{bookResult: &dto.SlotResponse{ID: uuid.New(), Status: string(entity.SlotStatusBooked)}}
		h := NewSlotHandler(stub, validator.NewValidator())
		rec := httptest.NewRecorder()
		h.BookSlot(rec, withVars(parentRequest(http.MethodPost, target, body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("slot taken maps to 404", func(t *testing.T) {
		h := NewSlotHandler(&stubSlotUsecase{bookErr: usecase.ErrSlotNotAvailable}, validator.NewValidator())
		rec := httptest.NewRecorder()
		h.BookSlot(rec, withVars(parentRequest(http.MethodPost, target, body)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid doctor id", func(t *testing.T) {
		h := NewSlotHandler(&stubSlotUsecase{}, validator.NewValidator())
		rec := httptest.NewRecorder()
		req := mux.SetURLVars(parentRequest(http.MethodPost, "/parent/doctors/nope/book", body), map[string]string{"doctorId": "nope"})
		h.BookSlot(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMutationHandlersAuthorization(t *testing.T) {
	slotID := uuid.New()
	vars := map[string]string{"id": slotID.String()}

	t.Run("confirm by non-owner maps to 403", func(t *testing.T) {
		h := NewSlotHandler(&stubSlotUsecase{confirmErr: usecase.ErrNotSlotOwner}, validator.NewValidator())
		rec := httptest.NewRecorder()
		req := mux.SetURLVars(doctorRequest(http.MethodPatch, "/doctor/slots/"+slotID.String()+"/confirm", nil), vars)
		h.ConfirmSlot(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("confirm without booking maps to 400", func(t *testing.T) {
		h := NewSlotHandler(&stubSlotUsecase{confirmErr: usecase.ErrSlotNotBooked}, validator.NewValidator())
		rec := httptest.NewRecorder()
		req := mux.SetURLVars(doctorRequest(http.MethodPatch, "/doctor/slots/"+slotID.String()+"/confirm", nil), vars)
		h.ConfirmSlot(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cancel by non-holder maps to 403", func(t *testing.T) {
		h := NewSlotHandler(&stubSlotUsecase{cancelErr: usecase.ErrNotBookingOwner}, validator.NewValidator())
		rec := httptest.NewRecorder()
		req := mux.SetURLVars(parentRequest(http.MethodPatch, "/parent/slots/"+slotID.String()+"/cancel", nil), vars)
		h.CancelSlot(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("delete unknown slot maps to 404", func(t *testing.T) {
		h := NewSlotHandler(&stubSlotUsecase{deleteErr: usecase.ErrSlotNotFound}, validator.NewValidator())
		rec := httptest.NewRecorder()
		req := mux.SetURLVars(doctorRequest(http.MethodDelete, "/doctor/slots/"+slotID.String(), nil), vars)
		h.DeleteSlot(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("reschedule onto occupied key maps to 409", func(t *testing.T) {
		conflictErr := fmt.Errorf("%w: 2026-09-07 - Monday - 10:00 AM", usecase.ErrSlotConflict)
		h := NewSlotHandler(&stubSlotUsecase{updateErr: conflictErr}, validator.NewValidator())
		rec := httptest.NewRecorder()
		req := mux.SetURLVars(doctorRequest(http.MethodPut, "/doctor/slots/"+slotID.String(), dto.UpdateSlotRequest{Time: "10:00 AM"}), vars)
		h.UpdateSlot(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
