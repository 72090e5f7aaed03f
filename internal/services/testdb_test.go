package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return gdb, mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "username", "email", "password", "role"})
}

func trailRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"trail_id", "trail_name", "trail_summary", "trail_description",
		"difficulty", "location", "length", "elevation_gain", "route_type", "user_id",
	})
}
