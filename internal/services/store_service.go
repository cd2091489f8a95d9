package services

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
)

// StoreService handles the tenant root: creating, renaming and deleting stores.
type StoreService struct {
	repo   repositories.StoreRepository
	guard  Authorizer
	events EventPublisher
}

// NewStoreService creates a new StoreService. events may be nil.
func NewStoreService(repo repositories.StoreRepository, guard Authorizer, events EventPublisher) *StoreService {
	return &StoreService{repo: repo, guard: guard, events: events}
}

// CreateStore creates a store owned by userID. Any authenticated user may own several stores.
func (s *StoreService) CreateStore(ctx context.Context, userID, name string) (*models.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	store := &models.Store{Name: name, UserID: userID}
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	publishCatalogEvent(s.events, "store.created", store.ID, store.ID)
	return store, nil
}

// ListUserStores returns the stores owned by userID. An empty result means the user
// still has to create their first store.
func (s *StoreService) ListUserStores(ctx context.Context, userID string) ([]models.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.repo.ListByUser(ctx, userID)
}

// GetStore returns a store to its owner.
func (s *StoreService) GetStore(ctx context.Context, userID, storeID string) (*models.Store, error) {
	if err := s.guard.Authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, storeID)
}

// RenameStore changes the name of an owned store.
func (s *StoreService) RenameStore(ctx context.Context, userID, storeID, name string) (*models.Store, error) {
	if err := s.guard.Authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	store := &models.Store{ID: storeID, Name: name}
	if err := s.repo.Rename(ctx, store); err != nil {
		return nil, err
	}
	publishCatalogEvent(s.events, "store.updated", store.ID, store.ID)
	return store, nil
}

// DeleteStore removes an owned store and, through the database, everything in it.
func (s *StoreService) DeleteStore(ctx context.Context, userID, storeID string) (int64, error) {
	if err := s.guard.Authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}
	count, err := s.repo.Delete(ctx, storeID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		publishCatalogEvent(s.events, "store.deleted", storeID, storeID)
	}
	return count, nil
}
