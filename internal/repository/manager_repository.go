package repository

import (
	"context"

	"gorm.io/gorm"

	"pharmacy/internal/model"
)

// ManagerRepository defines manager persistence operations.
type ManagerRepository interface {
	Create(ctx context.Context, manager *model.Manager) error
	FindFirstByName(ctx context.Context, name string) (*model.Manager, error)
	List(ctx context.Context) ([]model.Manager, error)
	Ping(ctx context.Context) error
}

type managerRepository struct {
	db *gorm.DB
}

// NewManagerRepository creates a new manager repository.
func NewManagerRepository(db *gorm.DB) ManagerRepository {
	return &managerRepository{db: db}
}

// Create inserts a manager; the store assigns its SRNo.
func (r *managerRepository) Create(ctx context.Context, manager *model.Manager) error {
	return r.db.WithContext(ctx).Create(manager).Error
}

// FindFirstByName returns the earliest registered manager with exactly this
// name, or gorm.ErrRecordNotFound.
func (r *managerRepository) FindFirstByName(ctx context.Context, name string) (*model.Manager, error) {
	var manager model.Manager
	if err := r.db.WithContext(ctx).Where("ManagerName = ?", name).First(&manager).Error; err != nil {
		return nil, err
	}
	return &manager, nil
}

// List returns every manager in store order.
func (r *managerRepository) List(ctx context.Context) ([]model.Manager, error) {
	var managers []model.Manager
	if err := r.db.WithContext(ctx).Find(&managers).Error; err != nil {
		return nil, err
	}
	return managers, nil
}

// Ping checks that the store connection is still usable.
func (r *managerRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
