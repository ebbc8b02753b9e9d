package repository

import (
	"context"

	"healthcare-booking/internal/domain/entity"

	"github.com/google/uuid"
)

type ScheduleRepository interface {
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.ScheduleEntry, error)
	// ReplaceForDoctor swaps the doctor's full weekly schedule for the
	// supplied entries in one transaction.
	ReplaceForDoctor(ctx context.Context, doctorID uuid.UUID, entries []entity.ScheduleEntry) error
}
