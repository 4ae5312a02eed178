package converter

import (
	"github.com/3bwahab/asd-healthcare-platform/internal/delivery/dto"
	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"
)

// ParentProfileToResponse converts a ParentProfile entity to ParentResponse DTO
func ParentProfileToResponse(profile *entity.ParentProfile) *dto.ParentResponse {
	if profile == nil {
		return nil
	}

	return &dto.ParentResponse{
		ID:          profile.UserID,
		Email:       profile.User.Email,
		FullName:    profile.User.FullName,
		PhoneNumber: profile.PhoneNumber,
		Age:         profile.Age,
		Address:     profile.Address,
	}
}

// ParentProfilesToResponses converts a slice of ParentProfile entities to DTOs
func ParentProfilesToResponses(profiles []entity.ParentProfile) []dto.ParentResponse {
	responses := make([]dto.ParentResponse, len(profiles))
	for i, profile := range profiles {
		resp := ParentProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
