package services

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo   repositories.CategoryRepository
	guard  Authorizer
	events EventPublisher
}

// NewCategoryService creates a new CategoryService. events may be nil.
func NewCategoryService(repo repositories.CategoryRepository, guard Authorizer, events EventPublisher) *CategoryService {
	return &CategoryService{repo: repo, guard: guard, events: events}
}

// ListCategories returns every category of the store.
func (s *CategoryService) ListCategories(ctx context.Context, storeID string) ([]models.Category, error) {
	return s.repo.ListByStore(ctx, storeID)
}

// GetCategory returns the categories matching id, possibly none.
func (s *CategoryService) GetCategory(ctx context.Context, id string) ([]models.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateCategory stores category after checking that userID owns its store.
func (s *CategoryService) CreateCategory(ctx context.Context, userID string, category *models.Category) error {
	if err := s.guard.Authorize(ctx, userID, category.StoreID); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return err
	}
	publishCatalogEvent(s.events, "category.created", category.StoreID, category.ID)
	return nil
}

// UpdateCategory rewrites category after checking that userID owns its store.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID string, category *models.Category) error {
	if err := s.guard.Authorize(ctx, userID, category.StoreID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, category); err != nil {
		return err
	}
	publishCatalogEvent(s.events, "category.updated", category.StoreID, category.ID)
	return nil
}

// DeleteCategory removes a category of the store and returns how many rows were deleted.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, storeID, id string) (int64, error) {
	if err := s.guard.Authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}
	count, err := s.repo.Delete(ctx, storeID, id)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		publishCatalogEvent(s.events, "category.deleted", storeID, id)
	}
	return count, nil
}
