package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateSurgeryRequestRequest validates presence only: urgency, date and
// location are deliberately free-form.
type CreateSurgeryRequestRequest struct {
	SurgeryType            string `json:"surgery_type" validate:"required"`
	RequiredSpecialization string `json:"required_specialization" validate:"required"`
	Urgency                string `json:"urgency" validate:"required"`
	Date                   string `json:"date" validate:"required"`
	Location               string `json:"location" validate:"required"`
	HospitalName           string `json:"hospital_name" validate:"required"`
	ConditionDescription   string `json:"condition_description" validate:"omitempty"`
}

// UpdateSurgeryRequestRequest fully replaces the descriptive fields.
type UpdateSurgeryRequestRequest struct {
	SurgeryType            string `json:"surgery_type" validate:"required"`
	RequiredSpecialization string `json:"required_specialization" validate:"required"`
	Urgency                string `json:"urgency" validate:"required"`
	Date                   string `json:"date" validate:"required"`
	Location               string `json:"location" validate:"required"`
	HospitalName           string `json:"hospital_name" validate:"required"`
	ConditionDescription   string `json:"condition_description" validate:"omitempty"`
}

// Response DTOs

type InterestedDoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Bio            string    `json:"bio"`
	Email          string    `json:"email"`
}

type SurgeryRequestResponse struct {
	ID                     uuid.UUID                  `json:"id"`
	HospitalID             uuid.UUID                  `json:"hospital_id"`
	SurgeryType            string                     `json:"surgery_type"`
	RequiredSpecialization string                     `json:"required_specialization"`
	Urgency                string                     `json:"urgency"`
	Date                   string                     `json:"date"`
	Location               string                     `json:"location"`
	HospitalName           string                     `json:"hospital_name"`
	ConditionDescription   string                     `json:"condition_description"`
	InterestedDoctors      []InterestedDoctorResponse `json:"interested_doctors,omitempty"`
	CreatedAt              time.Time                  `json:"created_at"`
	UpdatedAt              time.Time                  `json:"updated_at"`
}

type SurgeryRequestListResponse struct {
	Requests []SurgeryRequestResponse `json:"requests"`
	Total    int                      `json:"total"`
}
