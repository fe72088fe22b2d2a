package postgres

import (
	"path/filepath"
	"testing"

	"github.com/hirebridge/hirebridge/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.JobSeekerProfile{},
		&models.JobProviderProfile{},
		&models.Job{},
		&models.Application{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
