package entity

import "github.com/google/uuid"

// HospitalProfile represents hospital-specific profile data
type HospitalProfile struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	InstitutionName string    `gorm:"type:varchar(255);not null;index" json:"institution_name"`

	// Relationships
	User     User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Requests []SurgeryRequest `gorm:"foreignKey:HospitalID" json:"requests,omitempty"`
}

func (HospitalProfile) TableName() string {
	return "hospital_profiles"
}
