package handler

import (
	"encoding/json"
	"net/http"

	"github.com/3bwahab/asd-healthcare-platform/internal/delivery/dto"
	"github.com/3bwahab/asd-healthcare-platform/internal/delivery/http/middleware"
	"github.com/3bwahab/asd-healthcare-platform/internal/usecase"
	"github.com/3bwahab/asd-healthcare-platform/pkg/response"
	"github.com/3bwahab/asd-healthcare-platform/pkg/validator"
)

type ParentHandler struct {
	parentProfileUsecase usecase.ParentProfileUsecase
	validator            *validator.CustomValidator
}

func NewParentHandler(parentProfileUsecase usecase.ParentProfileUsecase, validator *validator.CustomValidator) *ParentHandler {
	return &ParentHandler{
		parentProfileUsecase: parentProfileUsecase,
		validator:            validator,
	}
}

// GetMyProfile handles a parent fetching their own profile
// @Summary Get own parent profile
// @Description Get the authenticated parent's profile
// @Tags Parents
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /parents/me [get]
func (h *ParentHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	parent, ok := middleware.GetParentFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Parent principal not found")
		return
	}

	profile, err := h.parentProfileUsecase.GetParent(r.Context(), parent.UserID)
	if err != nil {
		switch err {
		case usecase.ErrParentNotFound:
			response.NotFound(w, "Parent not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateMyProfile handles a parent editing their own profile
// @Summary Update own parent profile
// @Description Update the authenticated parent's profile fields
// @Tags Parents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ParentUpdateSelfRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /parents/me [put]
func (h *ParentHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	parent, ok := middleware.GetParentFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Parent principal not found")
		return
	}

	var req dto.ParentUpdateSelfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.parentProfileUsecase.UpdateSelfProfile(r.Context(), parent.UserID, &req)
	if err != nil {
		switch err {
		case usecase.ErrParentNotFound:
			response.NotFound(w, "Parent not found")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}
