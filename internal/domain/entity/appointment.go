package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

var (
	ErrInvalidStatus  = errors.New("invalid appointment status")
	ErrNotOwner       = errors.New("appointment does not belong to this doctor")
	ErrTerminalStatus = errors.New("appointment is already completed or cancelled")
)

// Valid reports whether the status is one of the three recognized values.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status ends the appointment lifecycle.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// Appointment links one patient to one doctor at a date/time. The patient
// owns the booking request; the doctor owns the status and the clinical
// notes. ConsultationFee is a snapshot of the doctor's fee at booking time
// and never changes afterwards.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDate string            `gorm:"type:varchar(10);not null;index" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:varchar(5);not null" json:"appointment_time"`
	Reason          string            `gorm:"type:text;not null" json:"reason"`
	ConsultationFee int               `gorm:"not null;default:0" json:"consultation_fee"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	DoctorNotes     *string           `gorm:"type:text" json:"doctor_notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User          `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  DoctorProfile `gorm:"foreignKey:DoctorID;references:UserID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Transition moves the appointment to newStatus on behalf of actorID.
// Only the owning doctor may transition; re-setting the current status is
// idempotent. With strict enabled a terminal appointment rejects any
// change to a different status.
func (a *Appointment) Transition(newStatus AppointmentStatus, actorID uuid.UUID, strict bool) error {
	if a.DoctorID != actorID {
		return ErrNotOwner
	}
	if !newStatus.Valid() {
		return ErrInvalidStatus
	}
	if strict && a.Status.Terminal() && newStatus != a.Status {
		return ErrTerminalStatus
	}
	a.Status = newStatus
	return nil
}

// Annotate overwrites the doctor notes in full on behalf of actorID.
// Empty notes clear the field.
func (a *Appointment) Annotate(notes string, actorID uuid.UUID) error {
	if a.DoctorID != actorID {
		return ErrNotOwner
	}
	a.DoctorNotes = &notes
	return nil
}

// IsScheduled checks if the appointment is still pending
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}
