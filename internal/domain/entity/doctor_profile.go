package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Bio            string    `gorm:"type:text" json:"bio,omitempty"`

	// Relationships
	User      User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Interests []Interest `gorm:"foreignKey:DoctorID" json:"interests,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
