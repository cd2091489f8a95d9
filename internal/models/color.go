package models

import "time"

// Color is a named product color. Value holds a hex code like "#fff" or "#00ff00".
type Color struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID   string    `json:"storeId" gorm:"type:varchar(36);not null;index"`
	Store     *Store    `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Value     string    `json:"value" gorm:"type:varchar(7);not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
