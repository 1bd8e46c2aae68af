package database

import (
	"github.com/medicare-camp/camp-api/internal/config"
	"github.com/medicare-camp/camp-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the sqlite database and migrates the schema. Foreign key
// constraints are not created: a registration's camp reference is weak, and
// camp deletion must not cascade or be blocked by existing registrations.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Camp{}, &models.Registration{}); err != nil {
		return nil, err
	}

	return db, nil
}
