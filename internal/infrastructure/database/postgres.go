package database

import (
	"fmt"

	"lifeline-qr-server/config"
	"lifeline-qr-server/internal/domain/entity"

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

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// AutoMigrate creates the five tables on first connection if they do not
// exist, including the unique email/qr_code indexes and the ON DELETE CASCADE
// foreign keys back to the accounts table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Account{},
		&entity.QRMapping{},
		&entity.MedicalRecord{},
		&entity.Order{},
		&entity.Feedback{},
	)
}
