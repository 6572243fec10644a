package entity

import (
	"time"

	"github.com/google/uuid"
)

// Urgency levels used by the seed data and the frontend.
// Urgency is stored as free-form text, the API does not reject other values.
const (
	UrgencyHigh   = "High"
	UrgencyMedium = "Medium"
	UrgencyLow    = "Low"
)

// SurgeryRequest represents a hospital's open need for a surgeon.
// HospitalName is a display snapshot taken at creation time; read views
// override it with the owning hospital's live institution name.
type SurgeryRequest struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalID             uuid.UUID `gorm:"type:uuid;not null;index" json:"hospital_id"`
	SurgeryType            string    `gorm:"type:varchar(255);not null" json:"surgery_type"`
	RequiredSpecialization string    `gorm:"type:varchar(100);not null;index" json:"required_specialization"`
	Urgency                string    `gorm:"type:varchar(20);not null" json:"urgency"`
	Date                   string    `gorm:"type:varchar(50);not null" json:"date"`
	Location               string    `gorm:"type:varchar(255);not null" json:"location"`
	HospitalName           string    `gorm:"type:varchar(255);not null" json:"hospital_name"`
	ConditionDescription   string    `gorm:"type:text" json:"condition_description"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hospital  User       `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Interests []Interest `gorm:"foreignKey:RequestID" json:"interests,omitempty"`
}

func (SurgeryRequest) TableName() string {
	return "surgery_requests"
}

// IsOwnedBy checks if the request belongs to the given hospital user
func (r *SurgeryRequest) IsOwnedBy(hospitalID uuid.UUID) bool {
	return r.HospitalID == hospitalID
}
