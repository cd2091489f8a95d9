package models

import "time"

// Billboard is a hero banner shown on storefront pages. Categories point at one.
type Billboard struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID   string    `json:"storeId" gorm:"type:varchar(36);not null;index"`
	Store     *Store    `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Label     string    `json:"label" gorm:"type:varchar(255);not null"`
	ImageURL  string    `json:"imageUrl" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
