package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// StringList is an ordered list of strings stored as a JSONB column.
type StringList []string

// Value returns the json value, implements driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan scans a value into StringList, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := []string{}
	err := json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}

// DepartmentHead describes an optional department-head appointment.
type DepartmentHead struct {
	IsDepartmentHead bool   `gorm:"not null;default:false" json:"is_department_head"`
	Department       string `gorm:"type:varchar(255)" json:"department,omitempty"`
	Institution      string `gorm:"type:varchar(255)" json:"institution,omitempty"`
}

// DoctorProfile represents doctor-specific profile data. MBBSFrom and
// CurrentWorkplace are required at signup; the remaining professional
// fields are filled in later through the profile editor.
type DoctorProfile struct {
	UserID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	MBBSFrom          string         `gorm:"column:mbbs_from;type:varchar(255);not null" json:"mbbs_from"`
	CurrentWorkplace  string         `gorm:"type:varchar(255);not null" json:"current_workplace"`
	Specialty         string         `gorm:"type:varchar(100);index" json:"specialty,omitempty"`
	AdditionalDegrees StringList     `gorm:"type:jsonb" json:"additional_degrees,omitempty"`
	AcademicPosition  string         `gorm:"type:varchar(100)" json:"academic_position,omitempty"`
	DepartmentHead    DepartmentHead `gorm:"embedded;embeddedPrefix:department_head_" json:"department_head"`
	Experience        int            `gorm:"not null;default:0" json:"experience"`
	ConsultationFee   int            `gorm:"not null;default:0" json:"consultation_fee"`
	LicenseNumber     string         `gorm:"type:varchar(100)" json:"license_number,omitempty"`
	Qualifications    string         `gorm:"type:text" json:"qualifications,omitempty"`

	// Relationships
	User            User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ScheduleEntries []ScheduleEntry `gorm:"foreignKey:DoctorID;references:UserID" json:"schedule,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// IsComplete reports whether the profile is discoverable by specialty
// search. Both specialty and license number must be set.
func (p *DoctorProfile) IsComplete() bool {
	return p.Specialty != "" && p.LicenseNumber != ""
}
