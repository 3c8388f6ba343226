package database

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the local SQLite store. The store is exclusive to this
// process on this device; the handle is opened once at startup and passed to
// every controller, never closed explicitly. Tests open their own ":memory:"
// stores instead.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}
