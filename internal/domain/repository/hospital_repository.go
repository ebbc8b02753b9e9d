package repository

import (
	"context"

	"healthcare-booking/internal/domain/entity"
)

type HospitalRepository interface {
	FindAll(ctx context.Context) ([]entity.Hospital, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, hospitals []entity.Hospital) error
}
