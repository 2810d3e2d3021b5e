package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormLogger is silent: store errors are returned to the caller and logged
// there with zap.
var gormLogger = gormlogger.Default.LogMode(gormlogger.Silent)

// Open opens the sqlite database at path for local runs.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true, Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	return db, nil
}
