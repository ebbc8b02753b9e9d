package repository

import (
	"context"

	"healthcare-booking/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailAndRole(ctx context.Context, email string, roleID int) (*entity.User, error)
	FindByVerificationCode(ctx context.Context, code string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
