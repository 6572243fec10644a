package converter

import (
	"medexus-backend/internal/delivery/dto"
	"medexus-backend/internal/domain/entity"
)

// InterestToResponse converts an Interest entity to InterestResponse DTO
func InterestToResponse(interest *entity.Interest) *dto.InterestResponse {
	if interest == nil {
		return nil
	}

	return &dto.InterestResponse{
		ID:        interest.ID,
		RequestID: interest.RequestID,
		DoctorID:  interest.DoctorID,
		CreatedAt: interest.CreatedAt,
	}
}

// InterestToMyInterestResponse pairs an interest with its request for the
// doctor's "my interests" view.
func InterestToMyInterestResponse(interest *entity.Interest, request *entity.SurgeryRequest, hospital *entity.User) *dto.MyInterestResponse {
	if interest == nil || request == nil {
		return nil
	}

	return &dto.MyInterestResponse{
		Interest: *InterestToResponse(interest),
		Request:  *RequestToBrowseResponse(request, hospital),
	}
}
