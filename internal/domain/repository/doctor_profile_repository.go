package repository

import (
	"context"

	"healthcare-booking/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorProfileRepository interface {
	// Create inserts the profile together with its embedded User row.
	Create(ctx context.Context, profile *entity.DoctorProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error)
	Update(ctx context.Context, profile *entity.DoctorProfile) error
	// SearchBySpecialty returns profile-complete doctors whose specialty
	// matches case-insensitively.
	SearchBySpecialty(ctx context.Context, specialty string) ([]entity.DoctorProfile, error)
}
