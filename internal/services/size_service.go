package services

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
)

// SizeService handles business logic related to sizes.
type SizeService struct {
	repo   repositories.SizeRepository
	guard  Authorizer
	events EventPublisher
}

// NewSizeService creates a new SizeService. events may be nil.
func NewSizeService(repo repositories.SizeRepository, guard Authorizer, events EventPublisher) *SizeService {
	return &SizeService{repo: repo, guard: guard, events: events}
}

func (s *SizeService) ListSizes(ctx context.Context, storeID string) ([]models.Size, error) {
	return s.repo.ListByStore(ctx, storeID)
}

func (s *SizeService) GetSize(ctx context.Context, id string) ([]models.Size, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateSize stores size after checking that userID owns its store.
func (s *SizeService) CreateSize(ctx context.Context, userID string, size *models.Size) error {
	if err := s.guard.Authorize(ctx, userID, size.StoreID); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, size); err != nil {
		return err
	}
	publishCatalogEvent(s.events, "size.created", size.StoreID, size.ID)
	return nil
}

// UpdateSize rewrites size after checking that userID owns its store.
func (s *SizeService) UpdateSize(ctx context.Context, userID string, size *models.Size) error {
	if err := s.guard.Authorize(ctx, userID, size.StoreID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, size); err != nil {
		return err
	}
	publishCatalogEvent(s.events, "size.updated", size.StoreID, size.ID)
	return nil
}

func (s *SizeService) DeleteSize(ctx context.Context, userID, storeID, id string) (int64, error) {
	if err := s.guard.Authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}
	count, err := s.repo.Delete(ctx, storeID, id)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		publishCatalogEvent(s.events, "size.deleted", storeID, id)
	}
	return count, nil
}
