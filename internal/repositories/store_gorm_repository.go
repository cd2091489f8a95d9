package repositories

import (
	"context"
	"errors"
	"fmt"

	"tokoadmin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{
		db: db,
	}
}

// Create creates a new store in the database.
func (r *GORMStoreRepository) Create(ctx context.Context, store *models.Store) error {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(store).Error; err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// GetByID retrieves a single store by its ID.
func (r *GORMStoreRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store with ID %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get store by ID %s: %w", id, err)
	}
	return &store, nil
}

// ListByUser returns the stores owned by userID, oldest first.
func (r *GORMStoreRepository) ListByUser(ctx context.Context, userID string) ([]models.Store, error) {
	stores := make([]models.Store, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to list stores of user %s: %w", userID, err)
	}
	return stores, nil
}

// IsOwnedBy reports whether a store with storeID exists and belongs to userID.
func (r *GORMStoreRepository) IsOwnedBy(ctx context.Context, storeID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Store{}).
		Where("id = ? AND user_id = ?", storeID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check owner of store %s: %w", storeID, err)
	}
	return count > 0, nil
}

// Rename updates the store name and reloads the row into store.
func (r *GORMStoreRepository) Rename(ctx context.Context, store *models.Store) error {
	res := r.db.WithContext(ctx).Model(&models.Store{}).Where("id = ?", store.ID).Update("name", store.Name)
	if res.Error != nil {
		return fmt.Errorf("failed to rename store %s: %w", store.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("store with ID %s not found for update: %w", store.ID, ErrNotFound)
	}
	if err := r.db.WithContext(ctx).First(store, "id = ?", store.ID).Error; err != nil {
		return fmt.Errorf("failed to reload store %s: %w", store.ID, err)
	}
	return nil
}

// Delete removes the store. Billboards, categories, sizes, colors, products and images
// are removed by the cascading foreign keys.
func (r *GORMStoreRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Store{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete store %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
