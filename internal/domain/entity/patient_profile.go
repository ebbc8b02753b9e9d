package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyContact is the person to reach when a patient cannot be.
type EmergencyContact struct {
	Name         string `gorm:"type:varchar(255)" json:"name,omitempty"`
	Phone        string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Relationship string `gorm:"type:varchar(50)" json:"relationship,omitempty"`
}

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"user_id"`
	DateOfBirth      *time.Time       `gorm:"type:date" json:"date_of_birth,omitempty"`
	BloodGroup       string           `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Address          string           `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact EmergencyContact `gorm:"embedded;embeddedPrefix:emergency_contact_" json:"emergency_contact"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID;references:UserID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
