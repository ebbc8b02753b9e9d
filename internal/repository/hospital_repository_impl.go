package repository

import (
	"context"

	"healthcare-booking/internal/domain/entity"
	domainRepo "healthcare-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type hospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepository(db *gorm.DB) domainRepo.HospitalRepository {
	return &hospitalRepository{db: db}
}

func (r *hospitalRepository) FindAll(ctx context.Context) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	err := r.db.WithContext(ctx).Order("name ASC").Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Hospital{}).Count(&count).Error
	return count, err
}

func (r *hospitalRepository) CreateBatch(ctx context.Context, hospitals []entity.Hospital) error {
	return r.db.WithContext(ctx).Create(&hospitals).Error
}
