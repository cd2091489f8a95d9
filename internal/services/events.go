package services

import (
	"encoding/json"
	"log"
	"time"

	"tokoadmin/internal/models"
)

// CatalogExchange is the exchange catalog change events are published to.
const CatalogExchange = "catalog"

// EventPublisher delivers a message to a broker exchange.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// publishCatalogEvent announces a committed change. Delivery is best effort:
// failures are logged and never undo or fail the change itself.
func publishCatalogEvent(publisher EventPublisher, eventType, storeID, entityID string) {
	if publisher == nil {
		return
	}

	body, err := json.Marshal(models.CatalogEvent{
		Type:       eventType,
		StoreID:    storeID,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := publisher.Publish(CatalogExchange, eventType, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for %s: %v", eventType, entityID, err)
	}
}
