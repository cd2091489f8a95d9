package services

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
)

// ColorService handles business logic related to colors.
type ColorService struct {
	repo   repositories.ColorRepository
	guard  Authorizer
	events EventPublisher
}

// NewColorService creates a new ColorService. events may be nil.
func NewColorService(repo repositories.ColorRepository, guard Authorizer, events EventPublisher) *ColorService {
	return &ColorService{repo: repo, guard: guard, events: events}
}

// ListColors returns every color of the store.
func (s *ColorService) ListColors(ctx context.Context, storeID string) ([]models.Color, error) {
	return s.repo.ListByStore(ctx, storeID)
}

func (s *ColorService) GetColor(ctx context.Context, id string) ([]models.Color, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateColor stores color after checking that userID owns its store.
func (s *ColorService) CreateColor(ctx context.Context, userID string, color *models.Color) error {
	if err := s.guard.Authorize(ctx, userID, color.StoreID); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, color); err != nil {
		return err
	}
	publishCatalogEvent(s.events, "color.created", color.StoreID, color.ID)
	return nil
}

func (s *ColorService) UpdateColor(ctx context.Context, userID string, color *models.Color) error {
	if err := s.guard.Authorize(ctx, userID, color.StoreID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, color); err != nil {
		return err
	}
	publishCatalogEvent(s.events, "color.updated", color.StoreID, color.ID)
	return nil
}

// DeleteColor removes a color of the store and returns how many rows were deleted.
func (s *ColorService) DeleteColor(ctx context.Context, userID, storeID, id string) (int64, error) {
	if err := s.guard.Authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}
	count, err := s.repo.Delete(ctx, storeID, id)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		publishCatalogEvent(s.events, "color.deleted", storeID, id)
	}
	return count, nil
}
