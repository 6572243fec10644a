package converter

import (
	"medexus-backend/internal/delivery/dto"
	"medexus-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO, flattening the
// role-specific profile fields onto the top level.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Name:      user.FullName,
		Email:     user.Email,
		Role:      user.RoleName(),
		CreatedAt: user.CreatedAt,
	}

	if user.HospitalProfile != nil {
		response.InstitutionName = user.HospitalProfile.InstitutionName
	}

	if user.DoctorProfile != nil {
		response.Specialization = user.DoctorProfile.Specialization
		response.Bio = user.DoctorProfile.Bio
	}

	return response
}

// UserToInterestedDoctor converts a doctor user into the compact shape a
// hospital sees on its own requests. Returns nil for users without a doctor
// profile so callers can skip them.
func UserToInterestedDoctor(user *entity.User) *dto.InterestedDoctorResponse {
	if user == nil || user.DoctorProfile == nil {
		return nil
	}

	return &dto.InterestedDoctorResponse{
		ID:             user.ID,
		Name:           user.FullName,
		Specialization: user.DoctorProfile.Specialization,
		Bio:            user.DoctorProfile.Bio,
		Email:          user.Email,
	}
}
