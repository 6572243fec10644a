package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ExpressInterestRequest struct {
	RequestID uuid.UUID `json:"request_id" validate:"required"`
}

// Response DTOs

type InterestResponse struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MyInterestResponse pairs an interest with its surgery request, the
// request's hospital_name refreshed from the owning hospital when possible.
type MyInterestResponse struct {
	Interest InterestResponse       `json:"interest"`
	Request  SurgeryRequestResponse `json:"request"`
}

type MyInterestListResponse struct {
	Interests []MyInterestResponse `json:"interests"`
	Total     int                  `json:"total"`
}
