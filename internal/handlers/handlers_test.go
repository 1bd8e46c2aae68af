package handlers

import (
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/medicare-camp/camp-api/internal/models"
	"github.com/medicare-camp/camp-api/internal/store"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Camp{}, &models.Registration{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func testCampHandler(t *testing.T, db *gorm.DB) *CampHandler {
	t.Helper()
	return NewCampHandler(store.NewCampStore(db), zap.NewNop())
}

func testUserHandler(t *testing.T, db *gorm.DB) *UserHandler {
	t.Helper()
	return NewUserHandler(store.NewUserStore(db), zap.NewNop())
}

// assertStatus checks that err is a huma status error with the given code.
func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected status %d error, got nil", want)
	}
	var se huma.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected huma.StatusError, got %T: %v", err, err)
	}
	if se.GetStatus() != want {
		t.Fatalf("expected status %d, got %d (%v)", want, se.GetStatus(), err)
	}
}
