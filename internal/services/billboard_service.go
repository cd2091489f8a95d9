package services

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
)

// BillboardService handles business logic related to billboards.
type BillboardService struct {
	repo   repositories.BillboardRepository
	guard  Authorizer
	events EventPublisher
}

// NewBillboardService creates a new BillboardService. events may be nil.
func NewBillboardService(repo repositories.BillboardRepository, guard Authorizer, events EventPublisher) *BillboardService {
	return &BillboardService{repo: repo, guard: guard, events: events}
}

// ListBillboards returns every billboard of the store.
func (s *BillboardService) ListBillboards(ctx context.Context, storeID string) ([]models.Billboard, error) {
	return s.repo.ListByStore(ctx, storeID)
}

// GetBillboard returns the billboards matching id, possibly none.
func (s *BillboardService) GetBillboard(ctx context.Context, id string) ([]models.Billboard, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateBillboard stores billboard after checking that userID owns its store.
func (s *BillboardService) CreateBillboard(ctx context.Context, userID string, billboard *models.Billboard) error {
	if err := s.guard.Authorize(ctx, userID, billboard.StoreID); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, billboard); err != nil {
		return err
	}
	publishCatalogEvent(s.events, "billboard.created", billboard.StoreID, billboard.ID)
	return nil
}

// UpdateBillboard rewrites billboard after checking that userID owns its store.
func (s *BillboardService) UpdateBillboard(ctx context.Context, userID string, billboard *models.Billboard) error {
	if err := s.guard.Authorize(ctx, userID, billboard.StoreID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, billboard); err != nil {
		return err
	}
	publishCatalogEvent(s.events, "billboard.updated", billboard.StoreID, billboard.ID)
	return nil
}

// DeleteBillboard removes a billboard of the store and returns how many rows were deleted.
func (s *BillboardService) DeleteBillboard(ctx context.Context, userID, storeID, id string) (int64, error) {
	if err := s.guard.Authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}
	count, err := s.repo.Delete(ctx, storeID, id)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		publishCatalogEvent(s.events, "billboard.deleted", storeID, id)
	}
	return count, nil
}
