package repository

import (
	"context"

	"healthcare-booking/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientProfileRepository interface {
	// Create inserts the profile together with its embedded User row.
	Create(ctx context.Context, profile *entity.PatientProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error)
	Update(ctx context.Context, profile *entity.PatientProfile) error
}
