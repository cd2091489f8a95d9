package repositories

import (
	"context"
	"fmt"

	"tokoadmin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBillboardRepository is a GORM implementation of BillboardRepository.
type GORMBillboardRepository struct {
	scopedRepository[models.Billboard]
}

// NewGORMBillboardRepository creates a new instance of GORMBillboardRepository.
func NewGORMBillboardRepository(db *gorm.DB) *GORMBillboardRepository {
	return &GORMBillboardRepository{scopedRepository[models.Billboard]{db: db, name: "billboard"}}
}

// Create creates a new billboard in the database.
func (r *GORMBillboardRepository) Create(ctx context.Context, billboard *models.Billboard) error {
	if billboard.ID == "" {
		billboard.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(billboard).Error; err != nil {
		return fmt.Errorf("failed to create billboard: %w", err)
	}
	return nil
}

// Update rewrites label and image URL and reloads the stored row into billboard.
func (r *GORMBillboardRepository) Update(ctx context.Context, billboard *models.Billboard) error {
	err := r.update(ctx, billboard.StoreID, billboard.ID, map[string]any{
		"label":     billboard.Label,
		"image_url": billboard.ImageURL,
	})
	if err != nil {
		return err
	}
	return r.reload(ctx, billboard.ID, billboard)
}

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	scopedRepository[models.Category]
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{scopedRepository[models.Category]{db: db, name: "category"}}
}

// Create creates a new category in the database.
// The billboard must belong to the category's store.
func (r *GORMCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureInStore(tx, &models.Billboard{}, "billboard", category.StoreID, category.BillboardID); err != nil {
			return err
		}
		if err := tx.Create(category).Error; err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
		return nil
	})
}

// Update rewrites name and billboard and reloads the stored row into category.
func (r *GORMCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := r.within(tx).update(ctx, category.StoreID, category.ID, map[string]any{
			"name":         category.Name,
			"billboard_id": category.BillboardID,
		})
		if err != nil {
			return err
		}
		return ensureInStore(tx, &models.Billboard{}, "billboard", category.StoreID, category.BillboardID)
	})
	if err != nil {
		return err
	}
	return r.reload(ctx, category.ID, category)
}

// GORMSizeRepository is a GORM implementation of SizeRepository.
type GORMSizeRepository struct {
	scopedRepository[models.Size]
}

// NewGORMSizeRepository creates a new instance of GORMSizeRepository.
func NewGORMSizeRepository(db *gorm.DB) *GORMSizeRepository {
	return &GORMSizeRepository{scopedRepository[models.Size]{db: db, name: "size"}}
}

// Create creates a new size in the database.
func (r *GORMSizeRepository) Create(ctx context.Context, size *models.Size) error {
	if size.ID == "" {
		size.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(size).Error; err != nil {
		return fmt.Errorf("failed to create size: %w", err)
	}
	return nil
}

// Update rewrites name and value and reloads the stored row into size.
func (r *GORMSizeRepository) Update(ctx context.Context, size *models.Size) error {
	err := r.update(ctx, size.StoreID, size.ID, map[string]any{
		"name":  size.Name,
		"value": size.Value,
	})
	if err != nil {
		return err
	}
	return r.reload(ctx, size.ID, size)
}

// GORMColorRepository is a GORM implementation of ColorRepository.
type GORMColorRepository struct {
	scopedRepository[models.Color]
}

// NewGORMColorRepository creates a new instance of GORMColorRepository.
func NewGORMColorRepository(db *gorm.DB) *GORMColorRepository {
	return &GORMColorRepository{scopedRepository[models.Color]{db: db, name: "color"}}
}

// Create creates a new color in the database.
func (r *GORMColorRepository) Create(ctx context.Context, color *models.Color) error {
	if color.ID == "" {
		color.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(color).Error; err != nil {
		return fmt.Errorf("failed to create color: %w", err)
	}
	return nil
}

// Update rewrites name and value and reloads the stored row into color.
func (r *GORMColorRepository) Update(ctx context.Context, color *models.Color) error {
	err := r.update(ctx, color.StoreID, color.ID, map[string]any{
		"name":  color.Name,
		"value": color.Value,
	})
	if err != nil {
		return err
	}
	return r.reload(ctx, color.ID, color)
}
