package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/musicmaps/musicmaps-backend/models"
)

// InitGormDB initializes and returns a GORM database instance backed
// by SQLite at dataSourceName (a file path, or ":memory:" in tests)
func InitGormDB(dataSourceName string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database using GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	// enable write-ahead logging for better concurrency
	if err := db.Exec("PRAGMA journal_mode=WAL;").Error; err != nil {
		logrus.WithError(err).Warn("failed to set WAL mode")
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logrus.WithField("path", dataSourceName).Info("GORM database initialized")
	return db, nil
}

// AutoMigrateModels migrates the five catalog tables. It is called
// during store initialization, after an optional drop
func AutoMigrateModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Genre{},
		&models.Artist{},
		&models.Venue{},
		&models.Show{},
		&models.ArtistShowLink{},
	)
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	logrus.Info("GORM AutoMigrate completed")
	return nil
}

// DropCatalogTables removes the five catalog tables so initialization
// can rebuild a fresh store. Missing tables are not an error
func DropCatalogTables(db *gorm.DB) error {
	err := db.Migrator().DropTable(
		&models.ArtistShowLink{},
		&models.Show{},
		&models.Artist{},
		&models.Venue{},
		&models.Genre{},
	)
	if err != nil {
		return fmt.Errorf("failed to drop catalog tables: %w", err)
	}
	return nil
}
