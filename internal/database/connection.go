package database

import (
	"fmt"
	"time"

	"github.com/thoughtcode-25/DIGI-FARM/internal/config"
	"github.com/thoughtcode-25/DIGI-FARM/internal/models"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDSN()

	var logLevel gormlogger.LogLevel
	if cfg.AppEnv == "development" {
		logLevel = gormlogger.Info
	} else {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
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
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	logger.Info("Database connected successfully")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	return db.AutoMigrate(
		&models.Farmer{},
		&models.DailyRecord{},
		&models.LedgerEntry{},
		&models.TaskItem{},
		&models.TaskCompletion{},
		&models.FarmerProgress{},
		&models.Farm{},
		&models.Disease{},
		&models.Scheme{},
		&models.FarmStatistics{},
		&models.ChatMessage{},
	)
}
