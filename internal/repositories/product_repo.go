package repositories

import (
	"context"

	"tokoadmin/internal/models"
)

// ProductFilter narrows a store's product listing. Empty fields do not filter.
type ProductFilter struct {
	CategoryID   string
	ColorID      string
	SizeID       string
	FeaturedOnly bool
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	ListByStore(ctx context.Context, storeID string, filter ProductFilter) ([]models.Product, error)
	FindByID(ctx context.Context, id string) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, storeID, id string) (int64, error)
}
