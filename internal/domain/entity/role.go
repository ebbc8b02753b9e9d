package entity

// Role represents a principal kind in the system
type Role struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDPatient = 1
	RoleIDDoctor  = 2
)

// RoleNames constants
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// RoleID resolves a role name to its fixed ID, 0 when unknown.
func RoleID(name string) int {
	switch name {
	case RolePatient:
		return RoleIDPatient
	case RoleDoctor:
		return RoleIDDoctor
	}
	return 0
}

// RoleName resolves a role ID to its name, empty when unknown.
func RoleName(id int) string {
	switch id {
	case RoleIDPatient:
		return RolePatient
	case RoleIDDoctor:
		return RoleDoctor
	}
	return ""
}
