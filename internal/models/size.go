package models

import "time"

// Size is a named product size such as "Large" / "L".
type Size struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID   string    `json:"storeId" gorm:"type:varchar(36);not null;index"`
	Store     *Store    `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Value     string    `json:"value" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
