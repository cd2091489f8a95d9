package repositories

import (
	"context"
	"fmt"

	"tokoadmin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Images").Preload("Category").Preload("Color").Preload("Size")
}

// ListByStore returns the store's unarchived products, newest first, with their relations loaded.
func (r *GORMProductRepository) ListByStore(ctx context.Context, storeID string, filter ProductFilter) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Where("store_id = ? AND is_archived = ?", storeID, false)
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.ColorID != "" {
		query = query.Where("color_id = ?", filter.ColorID)
	}
	if filter.SizeID != "" {
		query = query.Where("size_id = ?", filter.SizeID)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	products := make([]models.Product, 0)
	if err := withRelations(query).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products for store %s: %w", storeID, err)
	}
	return products, nil
}

// FindByID returns the products matching id with relations loaded. Archived products are included.
func (r *GORMProductRepository) FindByID(ctx context.Context, id string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := withRelations(r.db.WithContext(ctx)).Where("id = ?", id).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return products, nil
}

// Create inserts the product together with its images.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	assignImageIDs(product)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureReferences(tx, product); err != nil {
			return err
		}
		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		return nil
	})
}

// Update rewrites the product's fields and replaces its whole image set in one transaction,
// so readers never see the product without images.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	images := product.Images
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND store_id = ?", product.ID, product.StoreID).
			Updates(map[string]any{
				"name":        product.Name,
				"price":       product.Price,
				"category_id": product.CategoryID,
				"color_id":    product.ColorID,
				"size_id":     product.SizeID,
				"is_featured": product.IsFeatured,
				"is_archived": product.IsArchived,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product with ID %s not found for update: %w", product.ID, ErrNotFound)
		}
		if err := ensureReferences(tx, product); err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Image{}).Error; err != nil {
			return fmt.Errorf("failed to remove images of product %s: %w", product.ID, err)
		}
		if len(images) == 0 {
			return nil
		}
		for i := range images {
			images[i].ID = uuid.New().String()
			images[i].ProductID = product.ID
		}
		if err := tx.Create(&images).Error; err != nil {
			return fmt.Errorf("failed to store images of product %s: %w", product.ID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Preload("Images").First(product, "id = ?", product.ID).Error; err != nil {
		return fmt.Errorf("failed to reload product %s: %w", product.ID, err)
	}
	return nil
}

// Delete removes the product; its images go with it through the cascading foreign key.
func (r *GORMProductRepository) Delete(ctx context.Context, storeID, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).Delete(&models.Product{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete product %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

func assignImageIDs(product *models.Product) {
	for i := range product.Images {
		if product.Images[i].ID == "" {
			product.Images[i].ID = uuid.New().String()
		}
		product.Images[i].ProductID = product.ID
	}
}

func ensureReferences(tx *gorm.DB, product *models.Product) error {
	if err := ensureInStore(tx, &models.Category{}, "category", product.StoreID, product.CategoryID); err != nil {
		return err
	}
	if err := ensureInStore(tx, &models.Color{}, "color", product.StoreID, product.ColorID); err != nil {
		return err
	}
	return ensureInStore(tx, &models.Size{}, "size", product.StoreID, product.SizeID)
}
