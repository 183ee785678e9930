package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"pharmacy/internal/cache"
	apperrors "pharmacy/internal/errors"
	"pharmacy/internal/model"
	"pharmacy/internal/repository"
)

// Managers are never updated or deleted by this system; the TTL bounds
// staleness after an out-of-band table reset.
const managerCacheTTL = time.Minute

// ManagerService handles manager registration, lookup and listing.
type ManagerService interface {
	Register(ctx context.Context, name, pharmacyName string) (*model.Manager, error)
	Login(ctx context.Context, name string) (*model.Manager, error)
	List(ctx context.Context) ([]model.Manager, error)
}

type managerService struct {
	repo  repository.ManagerRepository
	cache *cache.Client
}

// NewManagerService creates a new manager service. cache may be nil.
func NewManagerService(repo repository.ManagerRepository, cache *cache.Client) ManagerService {
	return &managerService{
		repo:  repo,
		cache: cache,
	}
}

func managerCacheKey(name string) string {
	return "manager:name:" + name
}

// Register inserts a new manager. Duplicate names are accepted.
func (s *managerService) Register(ctx context.Context, name, pharmacyName string) (*model.Manager, error) {
	manager := &model.Manager{
		Name:         name,
		PharmacyName: pharmacyName,
	}
	if err := s.repo.Create(ctx, manager); err != nil {
		return nil, apperrors.NewStoreError("register manager", err)
	}
	_ = s.cache.Delete(ctx, managerCacheKey(name))
	return manager, nil
}

// Login returns the first manager registered under name, or
// ErrManagerNotFound. No credential is checked. A cached hit is only
// trusted while the store answers a ping.
func (s *managerService) Login(ctx context.Context, name string) (*model.Manager, error) {
	if data, _ := s.cache.Get(ctx, managerCacheKey(name)); data != nil {
		var cached model.Manager
		if err := json.Unmarshal(data, &cached); err == nil {
			if err := s.repo.Ping(ctx); err != nil {
				return nil, apperrors.NewStoreError("login", err)
			}
			return &cached, nil
		}
	}

	manager, err := s.repo.FindFirstByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManagerNotFound
		}
		return nil, apperrors.NewStoreError("login", err)
	}

	if payload, err := json.Marshal(manager); err == nil {
		_ = s.cache.Set(ctx, managerCacheKey(name), payload, managerCacheTTL)
	}

	return manager, nil
}

// List returns all registered managers.
func (s *managerService) List(ctx context.Context) ([]model.Manager, error) {
	managers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError("list managers", err)
	}
	return managers, nil
}
