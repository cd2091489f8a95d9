package services

import (
	"context"
	"errors"
	"fmt"

	"tokoadmin/internal/repositories"
)

var (
	// ErrUnauthenticated is returned when a mutation arrives without an identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUnauthorized is returned when the identity does not own the target store.
	ErrUnauthorized = errors.New("unauthorized")
)

// Authorizer decides whether a user may change a store's catalog.
type Authorizer interface {
	Authorize(ctx context.Context, userID, storeID string) error
}

// StoreGuard checks store ownership against the database on every call.
// Results are never cached, so a revoked or deleted store is seen immediately.
type StoreGuard struct {
	stores repositories.StoreRepository
}

// NewStoreGuard creates a new StoreGuard.
func NewStoreGuard(stores repositories.StoreRepository) *StoreGuard {
	return &StoreGuard{stores: stores}
}

// Authorize returns nil when userID owns storeID, ErrUnauthenticated when userID is empty
// and ErrUnauthorized when the store is missing or owned by someone else.
func (g *StoreGuard) Authorize(ctx context.Context, userID, storeID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if storeID == "" {
		return ErrUnauthorized
	}
	owned, err := g.stores.IsOwnedBy(ctx, storeID, userID)
	if err != nil {
		return fmt.Errorf("failed to authorize user %s for store %s: %w", userID, storeID, err)
	}
	if !owned {
		return ErrUnauthorized
	}
	return nil
}
