package usecase

import (
	"context"
	"errors"
	"fmt"

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
	ErrSlotNotFound       = errors.New("slot not found")
	ErrSlotConflict       = errors.New("time slot already exists")
	ErrSlotNotAvailable   = errors.New("selected time slot is not available")
	ErrSlotNotBooked      = errors.New("no parent has booked this slot yet")
	ErrNotSlotOwner       = errors.New("slot does not belong to this doctor")
	ErrNotBookingOwner    = errors.New("slot is not booked by this parent")
	ErrInvalidSlotStatus  = errors.New("invalid slot status")
	ErrNoTimesForDoctor   = errors.New("no times found for this doctor")
	ErrNoDoctorsForParent = errors.New("no doctors found for this parent")
	ErrNoParentsForDoctor = errors.New("no parents found for this doctor")
)

// SlotUsecase owns the slot state machine. Status only ever changes through
// these operations: available -> booked -> confirmed, with cancel resetting
// a booked slot back to available. Every mutation follows the same fixed
// sequence: load, authorize, then mutate.
type SlotUsecase interface {
	CreateSlots(ctx context.Context, doctorID uuid.UUID, req *dto.CreateSlotsRequest) (*dto.SlotListResponse, error)
	Book(ctx context.Context, parentID, doctorID uuid.UUID, req *dto.BookSlotRequest) (*dto.SlotResponse, error)
	Confirm(ctx context.Context, doctorID, slotID uuid.UUID) (*dto.SlotResponse, error)
	Cancel(ctx context.Context, parentID, slotID uuid.UUID) (*dto.SlotResponse, error)
	UpdateSlot(ctx context.Context, doctorID, slotID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	DeleteSlot(ctx context.Context, doctorID, slotID uuid.UUID) error
	DeleteAllAvailable(ctx context.Context, doctorID uuid.UUID) (int64, error)

	GetAvailable(ctx context.Context, doctorID uuid.UUID) (*dto.SlotListResponse, error)
	GetBooked(ctx context.Context, doctorID uuid.UUID) (*dto.SlotListResponse, error)
	GetAllSlots(ctx context.Context) (*dto.SlotListResponse, error)
	ListForParent(ctx context.Context, parentID uuid.UUID) (*dto.SlotListResponse, error)
	ListAllTimes(ctx context.Context, doctorID uuid.UUID, status string) (*dto.SlotTimesResponse, error)
	ListAvailableTimesForDateDay(ctx context.Context, doctorID uuid.UUID, date, day string) (*dto.SlotTimesResponse, error)
	ListDoctorsForParent(ctx context.Context, parentID uuid.UUID) (*dto.DoctorListResponse, error)
	ListParentsForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ParentListResponse, error)
}

type slotUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	slotRepo          repository.SlotRepository
	doctorProfileRepo repository.DoctorProfileRepository
	parentProfileRepo repository.ParentProfileRepository
	conflictChecker   *service.ConflictChecker
	auditService      service.AuditService
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.SlotRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	parentProfileRepo repository.ParentProfileRepository,
	conflictChecker *service.ConflictChecker,
	auditService service.AuditService,
) SlotUsecase {
	return &slotUsecase{
		db:                db,
		log:               log,
		slotRepo:          slotRepo,
		doctorProfileRepo: doctorProfileRepo,
		parentProfileRepo: parentProfileRepo,
		conflictChecker:   conflictChecker,
		auditService:      auditService,
	}
}

// CreateSlots creates a batch of available slots for a doctor.
//
// Phase 1 pre-flights every candidate against the store so a duplicate
// produces a typed conflict naming the offending entry before anything is
// written. Phase 2 inserts the whole batch in one statement. The two phases
// are not atomic against concurrent callers; a batch that slips past the
// pre-flight still fails on the (doctor, date, time) unique index, which is
// mapped to the same conflict error.
func (u *slotUsecase) CreateSlots(ctx context.Context, doctorID uuid.UUID, req *dto.CreateSlotsRequest) (*dto.SlotListResponse, error) {
	doctor, err := u.doctorProfileRepo.FindByUserID(u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	candidates := make([]service.SlotKey, len(req.AvailableSlots))
	for i, slot := range req.AvailableSlots {
		candidates[i] = service.SlotKey{Date: slot.Date, Day: slot.Day, Time: slot.Time}
	}

	conflict, err := u.conflictChecker.FirstConflict(ctx, u.db, doctorID, candidates)
	if err != nil {
		u.log.Warnf("Failed conflict pre-flight for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if conflict != nil {
		return nil, fmt.Errorf("%w: %s", ErrSlotConflict, conflict)
	}

	slots := make([]*entity.Slot, len(req.AvailableSlots))
	for i, input := range req.AvailableSlots {
		slots[i] = &entity.Slot{
			DoctorID: doctorID,
			Date:     input.Date,
			Day:      input.Day,
			Time:     input.Time,
			Status:   entity.SlotStatusAvailable,
		}
	}

	if err := u.slotRepo.CreateBatch(ctx, u.db, slots); err != nil {
		// A concurrent writer won the race between pre-flight and insert
		if isDuplicateKeyError(err, "doctor_date_time") {
			return nil, ErrSlotConflict
		}
		u.log.Warnf("Failed to create slots for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = *converter.SlotToResponse(slot)
	}

	_ = u.auditService.LogCreate(ctx, u.db, &doctorID, entity.AuditActionSlotCreate, "slot", fmt.Sprintf("%d slots", len(slots)), responses)
	u.log.Infof("Created %d slots for doctor %s", len(slots), doctorID)

	return &dto.SlotListResponse{
		Slots: responses,
		Total: len(responses),
	}, nil
}

// Book claims an available slot for a parent. The match on the key fields
// and the status flip happen in a single conditional update, so concurrent
// bookers of the same slot get exactly one winner; the losers see the slot
// as not available.
func (u *slotUsecase) Book(ctx context.Context, parentID, doctorID uuid.UUID, req *dto.BookSlotRequest) (*dto.SlotResponse, error) {
	doctor, err := u.doctorProfileRepo.FindByUserID(u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	slot, err := u.slotRepo.BookAvailable(ctx, u.db, doctorID, req.Date, req.Day, req.Time, parentID)
	if err != nil {
		u.log.Warnf("Failed to book slot for parent %s: %+v", parentID, err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotAvailable
	}

	_ = u.auditService.LogUpdate(ctx, u.db, &parentID, entity.AuditActionSlotBook, "slot", slot.ID.String(), entity.SlotStatusAvailable, entity.SlotStatusBooked)
	u.log.Infof("Slot booked: id=%s, doctor=%s, parent=%s", slot.ID, doctorID, parentID)

	return converter.SlotToResponse(slot), nil
}

// Confirm marks a booked slot as confirmed by the owning doctor
func (u *slotUsecase) Confirm(ctx context.Context, doctorID, slotID uuid.UUID) (*dto.SlotResponse, error) {
	slot, err := u.slotRepo.FindByID(ctx, u.db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %s: %+v", slotID, err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	if slot.DoctorID != doctorID {
		return nil, ErrNotSlotOwner
	}
	if !slot.HasParent() {
		return nil, ErrSlotNotBooked
	}

	oldStatus := slot.Status
	slot.Status = entity.SlotStatusConfirmed
	if err := u.slotRepo.Update(ctx, u.db, slot); err != nil {
		u.log.Warnf("Failed to confirm slot %s: %+v", slotID, err)
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, u.db, &doctorID, entity.AuditActionSlotConfirm, "slot", slot.ID.String(), oldStatus, slot.Status)
	u.log.Infof("Slot confirmed: id=%s, doctor=%s", slot.ID, doctorID)

	return converter.SlotToResponse(slot), nil
}

// Cancel resets a slot booked by the calling parent back to available.
// The booking history is not kept; the slot becomes indistinguishable from
// one that was never booked.
func (u *slotUsecase) Cancel(ctx context.Context, parentID, slotID uuid.UUID) (*dto.SlotResponse, error) {
	slot, err := u.slotRepo.FindByID(ctx, u.db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %s: %+v", slotID, err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	if slot.ParentID == nil || *slot.ParentID != parentID {
		return nil, ErrNotBookingOwner
	}

	oldStatus := slot.Status
	slot.Status = entity.SlotStatusAvailable
	slot.ParentID = nil
	if err := u.slotRepo.Update(ctx, u.db, slot); err != nil {
		u.log.Warnf("Failed to cancel slot %s: %+v", slotID, err)
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, u.db, &parentID, entity.AuditActionSlotCancel, "slot", slot.ID.String(), oldStatus, slot.Status)
	u.log.Infof("Slot cancelled: id=%s, parent=%s", slot.ID, parentID)

	return converter.SlotToResponse(slot), nil
}

// UpdateSlot moves a slot to a new date/day/time. Only the owning doctor may
// reschedule. Unlike CreateSlots there is no conflict pre-flight here: a move
// onto an occupied key surfaces as a unique-index violation, reported as the
// same conflict error.
func (u *slotUsecase) UpdateSlot(ctx context.Context, doctorID, slotID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	slot, err := u.slotRepo.FindByID(ctx, u.db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %s: %+v", slotID, err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	doctor, err := u.doctorProfileRepo.FindByUserID(u.db, slot.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", slot.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if slot.DoctorID != doctorID {
		return nil, ErrNotSlotOwner
	}

	oldKey := service.SlotKey{Date: slot.Date, Day: slot.Day, Time: slot.Time}
	if req.Date != "" {
		slot.Date = req.Date
	}
	if req.Day != "" {
		slot.Day = req.Day
	}
	if req.Time != "" {
		slot.Time = req.Time
	}

	if err := u.slotRepo.Update(ctx, u.db, slot); err != nil {
		if isDuplicateKeyError(err, "doctor_date_time") {
			return nil, fmt.Errorf("%w: %s - %s - %s", ErrSlotConflict, slot.Date, slot.Day, slot.Time)
		}
		u.log.Warnf("Failed to update slot %s: %+v", slotID, err)
		return nil, err
	}

	newKey := service.SlotKey{Date: slot.Date, Day: slot.Day, Time: slot.Time}
	_ = u.auditService.LogUpdate(ctx, u.db, &doctorID, entity.AuditActionSlotUpdate, "slot", slot.ID.String(), oldKey.String(), newKey.String())

	return converter.SlotToResponse(slot), nil
}

// DeleteSlot removes a single slot of any status. Ownership is verified
// before the delete runs, never after.
func (u *slotUsecase) DeleteSlot(ctx context.Context, doctorID, slotID uuid.UUID) error {
	slot, err := u.slotRepo.FindByID(ctx, u.db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %s: %+v", slotID, err)
		return err
	}
	if slot == nil {
		return ErrSlotNotFound
	}

	if slot.DoctorID != doctorID {
		return ErrNotSlotOwner
	}

	if _, err := u.slotRepo.Delete(ctx, u.db, slotID); err != nil {
		u.log.Warnf("Failed to delete slot %s: %+v", slotID, err)
		return err
	}

	_ = u.auditService.LogDelete(ctx, u.db, &doctorID, entity.AuditActionSlotDelete, "slot", slot.ID.String(), converter.SlotToResponse(slot))
	u.log.Infof("Slot deleted: id=%s, doctor=%s", slotID, doctorID)

	return nil
}

// DeleteAllAvailable bulk-deletes the caller's own available slots. Booked
// and confirmed slots are never touched by this path.
func (u *slotUsecase) DeleteAllAvailable(ctx context.Context, doctorID uuid.UUID) (int64, error) {
	deleted, err := u.slotRepo.DeleteAvailableByDoctor(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete available slots for doctor %s: %+v", doctorID, err)
		return 0, err
	}

	_ = u.auditService.LogDelete(ctx, u.db, &doctorID, entity.AuditActionSlotBulkClear, "slot", doctorID.String(), deleted)
	u.log.Infof("Deleted %d available slots for doctor %s", deleted, doctorID)

	return deleted, nil
}

// GetAvailable returns a doctor's bookable slots. Cancelled slots count as
// available here: cancellation resets a slot rather than retiring it.
func (u *slotUsecase) GetAvailable(ctx context.Context, doctorID uuid.UUID) (*dto.SlotListResponse, error) {
	doctor, err := u.doctorProfileRepo.FindByUserID(u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	slots, err := u.slotRepo.FindByDoctorAndStatuses(ctx, u.db, doctorID, entity.SlotStatusAvailable, entity.SlotStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to find available slots for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// GetBooked returns a doctor's booked slots
func (u *slotUsecase) GetBooked(ctx context.Context, doctorID uuid.UUID) (*dto.SlotListResponse, error) {
	doctor, err := u.doctorProfileRepo.FindByUserID(u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	slots, err := u.slotRepo.FindByDoctorAndStatuses(ctx, u.db, doctorID, entity.SlotStatusBooked)
	if err != nil {
		u.log.Warnf("Failed to find booked slots for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// GetAllSlots returns every slot in the system (admin surface)
func (u *slotUsecase) GetAllSlots(ctx context.Context) (*dto.SlotListResponse, error) {
	slots, err := u.slotRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all slots: %+v", err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// ListForParent returns every slot currently attached to a parent
func (u *slotUsecase) ListForParent(ctx context.Context, parentID uuid.UUID) (*dto.SlotListResponse, error) {
	slots, err := u.slotRepo.FindByParent(ctx, u.db, parentID)
	if err != nil {
		u.log.Warnf("Failed to find slots for parent %s: %+v", parentID, err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// ListAllTimes returns the display times of a doctor's slots, optionally
// narrowed to one status
func (u *slotUsecase) ListAllTimes(ctx context.Context, doctorID uuid.UUID, status string) (*dto.SlotTimesResponse, error) {
	var slots []entity.Slot
	var err error

	if status == "" {
		slots, err = u.slotRepo.FindByDoctor(ctx, u.db, doctorID)
	} else {
		switch entity.SlotStatus(status) {
		case entity.SlotStatusAvailable, entity.SlotStatusBooked, entity.SlotStatusCancelled, entity.SlotStatusConfirmed:
		default:
			return nil, ErrInvalidSlotStatus
		}
		slots, err = u.slotRepo.FindByDoctorAndStatuses(ctx, u.db, doctorID, entity.SlotStatus(status))
	}
	if err != nil {
		u.log.Warnf("Failed to find slots for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ErrNoTimesForDoctor
	}

	times := converter.SlotTimes(slots)
	return &dto.SlotTimesResponse{
		Times: times,
		Total: len(times),
	}, nil
}

// ListAvailableTimesForDateDay returns the available display times for one
// doctor on a specific date and weekday label
func (u *slotUsecase) ListAvailableTimesForDateDay(ctx context.Context, doctorID uuid.UUID, date, day string) (*dto.SlotTimesResponse, error) {
	slots, err := u.slotRepo.FindAvailableForDateDay(ctx, u.db, doctorID, date, day)
	if err != nil {
		u.log.Warnf("Failed to find slots for doctor %s on %s/%s: %+v", doctorID, date, day, err)
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ErrNoTimesForDoctor
	}

	times := converter.SlotTimes(slots)
	return &dto.SlotTimesResponse{
		Times: times,
		Total: len(times),
	}, nil
}

// ListDoctorsForParent returns the distinct doctors the parent currently
// holds a booked slot with
func (u *slotUsecase) ListDoctorsForParent(ctx context.Context, parentID uuid.UUID) (*dto.DoctorListResponse, error) {
	doctorIDs, err := u.slotRepo.DistinctDoctorIDsForParent(ctx, u.db, parentID)
	if err != nil {
		u.log.Warnf("Failed to find doctor ids for parent %s: %+v", parentID, err)
		return nil, err
	}
	if len(doctorIDs) == 0 {
		return nil, ErrNoDoctorsForParent
	}

	doctors, err := u.doctorProfileRepo.FindByUserIDs(u.db, doctorIDs)
	if err != nil {
		u.log.Warnf("Failed to load doctor profiles: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// ListParentsForDoctor returns the distinct parents currently holding a
// booked slot with the doctor
func (u *slotUsecase) ListParentsForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ParentListResponse, error) {
	parentIDs, err := u.slotRepo.DistinctParentIDsForDoctor(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find parent ids for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if len(parentIDs) == 0 {
		return nil, ErrNoParentsForDoctor
	}

	parents, err := u.parentProfileRepo.FindByUserIDs(u.db, parentIDs)
	if err != nil {
		u.log.Warnf("Failed to load parent profiles: %+v", err)
		return nil, err
	}

	return &dto.ParentListResponse{
		Parents: converter.ParentProfilesToResponses(parents),
		Total:   len(parents),
	}, nil
}
