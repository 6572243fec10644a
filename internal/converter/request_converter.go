package converter

import (
	"medexus-backend/internal/delivery/dto"
	"medexus-backend/internal/domain/entity"
)

// RequestToResponse converts a SurgeryRequest entity to its bare DTO, without
// any cross-entity enrichment.
func RequestToResponse(request *entity.SurgeryRequest) *dto.SurgeryRequestResponse {
	if request == nil {
		return nil
	}

	return &dto.SurgeryRequestResponse{
		ID:                     request.ID,
		HospitalID:             request.HospitalID,
		SurgeryType:            request.SurgeryType,
		RequiredSpecialization: request.RequiredSpecialization,
		Urgency:                request.Urgency,
		Date:                   request.Date,
		Location:               request.Location,
		HospitalName:           request.HospitalName,
		ConditionDescription:   request.ConditionDescription,
		CreatedAt:              request.CreatedAt,
		UpdatedAt:              request.UpdatedAt,
	}
}

// RequestToOwnerResponse builds the owning hospital's view: the request plus
// the doctors who expressed interest. Users that are missing or carry no
// doctor profile are skipped rather than reported.
func RequestToOwnerResponse(request *entity.SurgeryRequest, interestedUsers []*entity.User) *dto.SurgeryRequestResponse {
	response := RequestToResponse(request)
	if response == nil {
		return nil
	}

	doctors := make([]dto.InterestedDoctorResponse, 0, len(interestedUsers))
	for _, user := range interestedUsers {
		if doctor := UserToInterestedDoctor(user); doctor != nil {
			doctors = append(doctors, *doctor)
		}
	}
	response.InterestedDoctors = doctors

	return response
}

// RequestToBrowseResponse builds the doctor-facing view of a request: the
// stored hospital_name snapshot is replaced with the owning hospital's live
// institution name when that hospital still exists.
func RequestToBrowseResponse(request *entity.SurgeryRequest, hospital *entity.User) *dto.SurgeryRequestResponse {
	response := RequestToResponse(request)
	if response == nil {
		return nil
	}

	if hospital != nil && hospital.HospitalProfile != nil {
		response.HospitalName = hospital.HospitalProfile.InstitutionName
	}

	return response
}
