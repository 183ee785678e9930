package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLite opens a SQLite database at path. ":memory:" yields a private
// in-memory database; the pool is pinned to one connection so it survives.
func NewSQLite(path string, cfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	if err := pinSingleConnection(db); err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	return db, nil
}
