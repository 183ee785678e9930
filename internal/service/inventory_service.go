package service

import (
	"context"
	"time"

	apperrors "pharmacy/internal/errors"
	"pharmacy/internal/model"
	"pharmacy/internal/repository"
)

// InventoryService handles medicine stock operations.
type InventoryService interface {
	AddMedicine(ctx context.Context, name string, quantity int) (*model.Medicine, error)
	ListMedicines(ctx context.Context) ([]model.Medicine, error)
	// DeleteMedicine returns the number of rows removed; 0 means nothing matched.
	DeleteMedicine(ctx context.Context, id uint) (int64, error)
}

type inventoryService struct {
	repo repository.MedicineRepository
	now  func() time.Time
}

// NewInventoryService creates a new inventory service. now defaults to time.Now.
func NewInventoryService(repo repository.MedicineRepository, now func() time.Time) InventoryService {
	if now == nil {
		now = time.Now
	}
	return &inventoryService{
		repo: repo,
		now:  now,
	}
}

// AddMedicine stores a medicine dated today. Quantity is stored as given.
func (s *inventoryService) AddMedicine(ctx context.Context, name string, quantity int) (*model.Medicine, error) {
	// the local calendar day, pinned to UTC midnight so no driver location
	// shifts it onto the previous day
	t := s.now()
	medicine := &model.Medicine{
		Name:      name,
		Quantity:  quantity,
		AddedDate: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		AddedBy:   model.DefaultAddedBy,
	}
	if err := s.repo.Create(ctx, medicine); err != nil {
		return nil, apperrors.NewStoreError("add medicine", err)
	}
	return medicine, nil
}

// ListMedicines returns every medicine in store order.
func (s *inventoryService) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	medicines, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("list medicines", err)
	}
	return medicines, nil
}

func (s *inventoryService) DeleteMedicine(ctx context.Context, id uint) (int64, error) {
	n, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, apperrors.NewStoreError("delete medicine", err)
	}
	return n, nil
}
