package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record addressed by id does not exist in the given store.
var ErrNotFound = errors.New("record not found")

// ErrInvalidReference is returned when a referenced record does not exist in the referencing record's store.
var ErrInvalidReference = errors.New("referenced record not in store")

// ErrDuplicate is returned when an insert violates a unique index.
var ErrDuplicate = errors.New("duplicate record")

// scopedRepository implements the queries shared by every table that carries a store_id column.
type scopedRepository[T any] struct {
	db   *gorm.DB
	name string
}

// ListByStore returns every record of the store. The result is never nil.
func (r scopedRepository[T]) ListByStore(ctx context.Context, storeID string) ([]T, error) {
	items := make([]T, 0)
	if err := r.db.WithContext(ctx).Where("store_id = ?", storeID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list %ss for store %s: %w", r.name, storeID, err)
	}
	return items, nil
}

// FindByID returns the records matching id; an unknown id yields an empty slice, not an error.
func (r scopedRepository[T]) FindByID(ctx context.Context, id string) ([]T, error) {
	items := make([]T, 0)
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get %s by ID %s: %w", r.name, id, err)
	}
	return items, nil
}

// Delete removes the record and reports how many rows went away.
// Zero rows is not an error; foreign key violations are.
func (r scopedRepository[T]) Delete(ctx context.Context, storeID, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND store_id = ?", id, storeID).Delete(new(T))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete %s %s: %w", r.name, id, res.Error)
	}
	return res.RowsAffected, nil
}

// within returns a copy of the repository bound to tx.
func (r scopedRepository[T]) within(tx *gorm.DB) scopedRepository[T] {
	return scopedRepository[T]{db: tx, name: r.name}
}

func (r scopedRepository[T]) update(ctx context.Context, storeID, id string, columns map[string]any) error {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ? AND store_id = ?", id, storeID).Updates(columns)
	if res.Error != nil {
		return fmt.Errorf("failed to update %s %s: %w", r.name, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s with ID %s not found for update: %w", r.name, id, ErrNotFound)
	}
	return nil
}

func (r scopedRepository[T]) reload(ctx context.Context, id string, dest *T) error {
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%s with ID %s not found: %w", r.name, id, ErrNotFound)
		}
		return fmt.Errorf("failed to reload %s %s: %w", r.name, id, err)
	}
	return nil
}

// ensureInStore fails with ErrInvalidReference unless a row of model with id exists in storeID.
// Foreign keys only check the id, so tenancy of references is checked here.
func ensureInStore(tx *gorm.DB, model any, name, storeID, id string) error {
	var n int64
	if err := tx.Model(model).Where("id = ? AND store_id = ?", id, storeID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check %s %s: %w", name, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s is not in store %s: %w", name, id, storeID, ErrInvalidReference)
	}
	return nil
}
