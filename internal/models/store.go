package models

import "time"

// Store is the tenant root. Every other catalog record belongs to exactly one store.
type Store struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	UserID    string    `json:"userId" gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
