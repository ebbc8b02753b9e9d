package repository

import (
	"context"

	"healthcare-booking/internal/domain/entity"
	domainRepo "healthcare-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) domainRepo.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.ScheduleEntry, error) {
	var entries []entity.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *scheduleRepository) ReplaceForDoctor(ctx context.Context, doctorID uuid.UUID, entries []entity.ScheduleEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", doctorID).
			Delete(&entity.ScheduleEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		for i := range entries {
			entries[i].ID = 0
			entries[i].DoctorID = doctorID
		}
		return tx.Create(&entries).Error
	})
}
