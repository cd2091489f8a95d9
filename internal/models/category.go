package models

import "time"

// Category groups products and is rendered with its billboard.
type Category struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID     string     `json:"storeId" gorm:"type:varchar(36);not null;index"`
	Store       *Store     `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	BillboardID string     `json:"billboardId" gorm:"type:varchar(36);not null;index"`
	Billboard   *Billboard `json:"billboard,omitempty"`
	Name        string     `json:"name" gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
