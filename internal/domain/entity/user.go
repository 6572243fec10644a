package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table.
// Role-specific attributes live on HospitalProfile / DoctorProfile so required
// fields are enforced structurally instead of as optional document keys.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role            Role             `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	HospitalProfile *HospitalProfile `gorm:"foreignKey:UserID" json:"hospital_profile,omitempty"`
	DoctorProfile   *DoctorProfile   `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsHospital checks if the user holds the hospital role
func (u *User) IsHospital() bool {
	return u.RoleID == RoleIDHospital
}

// IsDoctor checks if the user holds the doctor role
func (u *User) IsDoctor() bool {
	return u.RoleID == RoleIDDoctor
}

// RoleName returns the user's role name derived from RoleID
func (u *User) RoleName() string {
	return RoleNameByID(u.RoleID)
}
