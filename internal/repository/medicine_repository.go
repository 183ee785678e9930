package repository

import (
	"context"

	"gorm.io/gorm"

	"pharmacy/internal/model"
)

// MedicineRepository defines medicine persistence operations.
type MedicineRepository interface {
	Create(ctx context.Context, medicine *model.Medicine) error
	List(ctx context.Context) ([]model.Medicine, error)
	DeleteByID(ctx context.Context, id uint) (int64, error)
}

type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository creates a new medicine repository.
func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &medicineRepository{db: db}
}

// Create inserts a medicine row. Price is left NULL.
func (r *medicineRepository) Create(ctx context.Context, medicine *model.Medicine) error {
	return r.db.WithContext(ctx).Omit("Price").Create(medicine).Error
}

// List returns all medicines without an ORDER BY; order is whatever the
// store's scan yields.
func (r *medicineRepository) List(ctx context.Context) ([]model.Medicine, error) {
	var medicines []model.Medicine
	if err := r.db.WithContext(ctx).Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// DeleteByID deletes the medicine with the given SRNo and reports how many
// rows were removed (0 or 1).
func (r *medicineRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("SRNo = ?", id).Delete(&model.Medicine{})
	return res.RowsAffected, res.Error
}
