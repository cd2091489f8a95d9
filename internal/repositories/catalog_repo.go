package repositories

import (
	"context"

	"tokoadmin/internal/models"
)

// BillboardRepository defines the interface for billboard data access.
type BillboardRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]models.Billboard, error)
	FindByID(ctx context.Context, id string) ([]models.Billboard, error)
	Create(ctx context.Context, billboard *models.Billboard) error
	Update(ctx context.Context, billboard *models.Billboard) error
	Delete(ctx context.Context, storeID, id string) (int64, error)
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]models.Category, error)
	FindByID(ctx context.Context, id string) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, storeID, id string) (int64, error)
}

// SizeRepository defines the interface for size data access.
type SizeRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]models.Size, error)
	FindByID(ctx context.Context, id string) ([]models.Size, error)
	Create(ctx context.Context, size *models.Size) error
	Update(ctx context.Context, size *models.Size) error
	Delete(ctx context.Context, storeID, id string) (int64, error)
}

// ColorRepository defines the interface for color data access.
type ColorRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]models.Color, error)
	FindByID(ctx context.Context, id string) ([]models.Color, error)
	Create(ctx context.Context, color *models.Color) error
	Update(ctx context.Context, color *models.Color) error
	Delete(ctx context.Context, storeID, id string) (int64, error)
}
