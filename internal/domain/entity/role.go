package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDHospital = 1
	RoleIDDoctor   = 2
)

// RoleNames constants
const (
	RoleHospital = "hospital"
	RoleDoctor   = "doctor"
)

// RoleNameByID maps a role ID to its role name, empty string if unknown.
func RoleNameByID(roleID int) string {
	switch roleID {
	case RoleIDHospital:
		return RoleHospital
	case RoleIDDoctor:
		return RoleDoctor
	default:
		return ""
	}
}

// RoleIDByName maps a role name to its role ID, 0 if unknown.
func RoleIDByName(roleName string) int {
	switch roleName {
	case RoleHospital:
		return RoleIDHospital
	case RoleDoctor:
		return RoleIDDoctor
	default:
		return 0
	}
}
