package services

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	guard  Authorizer
	events EventPublisher
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, guard Authorizer, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		guard:  guard,
		events: events,
	}
}

// ListProducts retrieves the store's visible products. Archived products are never listed.
func (s *ProductService) ListProducts(ctx context.Context, storeID string, filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.ListByStore(ctx, storeID, filter)
}

// GetProduct retrieves the products matching id together with images, category, color and size.
func (s *ProductService) GetProduct(ctx context.Context, id string) ([]models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateProduct creates a new product and its images.
func (s *ProductService) CreateProduct(ctx context.Context, userID string, product *models.Product) error {
	if err := s.guard.Authorize(ctx, userID, product.StoreID); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	publishCatalogEvent(s.events, "product.created", product.StoreID, product.ID)
	return nil
}

// UpdateProduct updates an existing product. The previous images are replaced by product.Images.
func (s *ProductService) UpdateProduct(ctx context.Context, userID string, product *models.Product) error {
	if err := s.guard.Authorize(ctx, userID, product.StoreID); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}
	publishCatalogEvent(s.events, "product.updated", product.StoreID, product.ID)
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, userID, storeID, id string) (int64, error) {
	if err := s.guard.Authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}
	count, err := s.repo.Delete(ctx, storeID, id)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		publishCatalogEvent(s.events, "product.deleted", storeID, id)
	}
	return count, nil
}
