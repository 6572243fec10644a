package entity

import (
	"time"

	"github.com/google/uuid"
)

// Interest represents a doctor's expression of interest in one surgery request.
// The composite unique index makes the (request, doctor) pair unique at the
// storage layer, so a racing duplicate insert fails even when the
// application-level pre-check passes.
type Interest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_interests_request_doctor" json:"request_id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_interests_request_doctor;index" json:"doctor_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Request SurgeryRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	Doctor  User           `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Interest) TableName() string {
	return "interests"
}
