package usecase

import (
	"context"

	"healthcare-booking/internal/converter"
	"healthcare-booking/internal/delivery/dto"
	"healthcare-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type DoctorDirectoryUsecase interface {
	SearchDoctors(ctx context.Context, specialty string) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.UserResponse, error)
}

type doctorDirectoryUsecase struct {
	log               *logrus.Logger
	doctorProfileRepo repository.DoctorProfileRepository
}

func NewDoctorDirectoryUsecase(log *logrus.Logger, doctorProfileRepo repository.DoctorProfileRepository) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:               log,
		doctorProfileRepo: doctorProfileRepo,
	}
}

// SearchDoctors lists discoverable doctors whose specialty matches the
// query case-insensitively. Doctors without a specialty or a license
// number never appear, whatever the query.
func (u *doctorDirectoryUsecase) SearchDoctors(ctx context.Context, specialty string) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorProfileRepo.SearchBySpecialty(ctx, specialty)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, err
	}

	doctors := make([]dto.UserResponse, 0, len(profiles))
	for i := range profiles {
		doctors = append(doctors, *converter.DoctorToUserResponse(&profiles[i]))
	}

	return &dto.DoctorListResponse{
		Doctors: doctors,
		Total:   len(doctors),
	}, nil
}

// GetDoctor returns one doctor's public card with profile and schedule.
func (u *doctorDirectoryUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.UserResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to load doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToUserResponse(profile), nil
}
