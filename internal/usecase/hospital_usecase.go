package usecase

import (
	"context"

	"healthcare-booking/internal/converter"
	"healthcare-booking/internal/delivery/dto"
	"healthcare-booking/internal/domain/entity"
	"healthcare-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type HospitalUsecase interface {
	ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error)
}

type hospitalUsecase struct {
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
}

func NewHospitalUsecase(log *logrus.Logger, hospitalRepo repository.HospitalRepository) HospitalUsecase {
	return &hospitalUsecase{
		log:          log,
		hospitalRepo: hospitalRepo,
	}
}

// ListHospitals returns the hospital directory.
func (u *hospitalUsecase) ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list hospitals: %+v", err)
		return nil, err
	}
	return converter.HospitalsToListResponse(hospitals), nil
}

// SeedHospitals loads the directory once. An already populated table is
// left alone.
func SeedHospitals(ctx context.Context, hospitalRepo repository.HospitalRepository) error {
	count, err := hospitalRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return hospitalRepo.CreateBatch(ctx, defaultHospitals())
}

func defaultHospitals() []entity.Hospital {
	return []entity.Hospital{
		{
			ID:            "h1",
			Name:          "City General Hospital",
			Address:       "123 Main Street, Downtown",
			Phone:         "+1-555-0101",
			Specialties:   entity.StringList{"Cardiology", "Neurology", "Orthopedics"},
			Rating:        4.5,
			BedsAvailable: 45,
		},
		{
			ID:            "h2",
			Name:          "St. Mary Medical Center",
			Address:       "456 Oak Avenue, Midtown",
			Phone:         "+1-555-0102",
			Specialties:   entity.StringList{"Pediatrics", "Gynecology", "Dermatology"},
			Rating:        4.7,
			BedsAvailable: 32,
		},
		{
			ID:            "h3",
			Name:          "Riverside Clinic",
			Address:       "789 River Road, Westside",
			Phone:         "+1-555-0103",
			Specialties:   entity.StringList{"General Medicine", "ENT", "Ophthalmology"},
			Rating:        4.2,
			BedsAvailable: 18,
		},
		{
			ID:            "h4",
			Name:          "Northgate University Hospital",
			Address:       "12 Campus Drive, Northgate",
			Phone:         "+1-555-0104",
			Specialties:   entity.StringList{"Oncology", "Cardiology", "Psychiatry"},
			Rating:        4.8,
			BedsAvailable: 67,
		},
		{
			ID:            "h5",
			Name:          "Lakeside Community Hospital",
			Address:       "34 Lakeshore Boulevard, Eastside",
			Phone:         "+1-555-0105",
			Specialties:   entity.StringList{"Orthopedics", "General Medicine", "Urology"},
			Rating:        4.0,
			BedsAvailable: 25,
		},
	}
}
