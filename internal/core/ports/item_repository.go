package ports

import (
	"context"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
)

// ItemRepository persists and loads Item aggregates.
type ItemRepository interface {
	// Add saves a new catalog item.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update saves an existing item. The stored aggregate version is
	// checked on write; a concurrent modification surfaces as
	// errs.VersionIsInvalidError and the enclosing transaction must abort.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by ID. Returns errs.ObjectNotFoundError when
	// no item with the given ID exists.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetAll retrieves all catalog items.
	GetAll(ctx context.Context) ([]*item.Item, error)
}
