package ports

import (
	"context"

	"bookshop/internal/core/domain/model/category"
	"bookshop/internal/core/domain/model/kernel"
)

// CategoryRepository persists and loads Category entities.
type CategoryRepository interface {
	// Add saves a new category.
	Add(ctx context.Context, aggregate *category.Category) error

	// Get retrieves a category by ID. Returns errs.ObjectNotFoundError
	// when no category with the given ID exists.
	Get(ctx context.Context, id kernel.UUID) (*category.Category, error)

	// GetAll retrieves all categories.
	GetAll(ctx context.Context) ([]*category.Category, error)
}
