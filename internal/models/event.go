package models

import "time"

// CatalogEvent announces a committed change to a store's catalog.
type CatalogEvent struct {
	Type       string    `json:"type"` // e.g. "billboard.created", "product.deleted"
	StoreID    string    `json:"storeId"`
	EntityID   string    `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
}
