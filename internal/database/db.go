package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SylleoYr/pegasus-frontend/internal/config"
	"github.com/SylleoYr/pegasus-frontend/internal/models"
)

var DB *gorm.DB

func InitDB(cfg *config.Config) {
	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to open launch history database: %v", err)
	}

	if err := DB.AutoMigrate(&models.Launch{}); err != nil {
		logrus.Fatalf("Failed to auto-migrate database: %v", err)
	}

	logrus.Info("Launch history database opened and migrated")
}
