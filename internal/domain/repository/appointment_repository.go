package repository

import (
	"context"

	"healthcare-booking/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// FindByPatientID returns the patient's appointments ordered by
	// appointment date descending, most recent first.
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error)
	// FindByDoctorID returns the doctor's appointments with the patient
	// preloaded, ordered by appointment date descending.
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
}
