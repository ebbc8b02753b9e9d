package database

import (
	"fmt"

	"healthcare-booking/config"
	"healthcare-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.DoctorProfile{},
		&entity.PatientProfile{},
		&entity.ScheduleEntry{},
		&entity.Appointment{},
		&entity.AuditLog{},
		&entity.Hospital{},
	)
}

// SeedRoles inserts the two fixed principal kinds if missing.
func SeedRoles(db *gorm.DB) error {
	roles := []entity.Role{
		{ID: entity.RoleIDPatient, RoleName: entity.RolePatient},
		{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor},
	}
	for _, role := range roles {
		if err := db.Where("id = ?", role.ID).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}
