package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the store.
type Product struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID    string          `json:"storeId" gorm:"type:varchar(36);not null;index"`
	Store      *Store          `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	CategoryID string          `json:"categoryId" gorm:"type:varchar(36);not null;index"`
	Category   *Category       `json:"category,omitempty"`
	ColorID    string          `json:"colorId" gorm:"type:varchar(36);not null;index"`
	Color      *Color          `json:"color,omitempty"`
	SizeID     string          `json:"sizeId" gorm:"type:varchar(36);not null;index"`
	Size       *Size           `json:"size,omitempty"`
	Name       string          `json:"name" gorm:"type:varchar(255);not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	IsFeatured bool            `json:"isFeatured" gorm:"not null;default:false"`
	IsArchived bool            `json:"isArchived" gorm:"not null;default:false"`
	Images     []Image         `json:"images" gorm:"constraint:OnDelete:CASCADE;"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Image is a product photo. It lives and dies with its product.
type Image struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);not null;index"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
