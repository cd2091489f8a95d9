package repositories

import (
	"context"

	"tokoadmin/internal/models"
)

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	Create(ctx context.Context, store *models.Store) error
	GetByID(ctx context.Context, id string) (*models.Store, error)
	ListByUser(ctx context.Context, userID string) ([]models.Store, error)
	IsOwnedBy(ctx context.Context, storeID, userID string) (bool, error)
	Rename(ctx context.Context, store *models.Store) error
	Delete(ctx context.Context, id string) (int64, error)
}
