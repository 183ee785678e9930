package db

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"pharmacy/internal/config"
	"pharmacy/internal/logging"
	"pharmacy/internal/model"
)

// Session owns the single store connection shared by every role for the
// lifetime of the process.
type Session struct {
	db        *gorm.DB
	closeOnce sync.Once
	closeErr  error
}

// Open connects to the store described by cfg.
func Open(cfg config.DBConfig, logger *log.Logger) (*Session, error) {
	gormCfg := &gorm.Config{Logger: logging.GormLogger(logger)}

	var (
		gdb *gorm.DB
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		gdb, err = NewSQLite(cfg.Path, gormCfg)
	default:
		gdb, err = NewMySQL(cfg.MySQLDSN(), gormCfg)
	}
	if err != nil {
		return nil, err
	}
	return NewSession(gdb), nil
}

// NewSession wraps an already connected GORM DB.
func NewSession(gdb *gorm.DB) *Session {
	return &Session{db: gdb}
}

// DB returns the underlying GORM handle for repositories.
func (s *Session) DB() *gorm.DB {
	return s.db
}

// UseSingleConnection caps the pool at one connection, so every operation
// of an interactive session runs on the same store connection.
func (s *Session) UseSingleConnection() error {
	if err := pinSingleConnection(s.db); err != nil {
		return fmt.Errorf("pin connection: %w", err)
	}
	return nil
}

func pinSingleConnection(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	return nil
}

// Migrate creates the Manager and Medicine tables if they are missing.
func (s *Session) Migrate() error {
	if err := s.db.AutoMigrate(&model.Manager{}, &model.Medicine{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Close releases the connection pool. Only the first call has any effect.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		sqlDB, err := s.db.DB()
		if err != nil {
			s.closeErr = fmt.Errorf("close database: %w", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			s.closeErr = fmt.Errorf("close database: %w", err)
		}
	})
	return s.closeErr
}
