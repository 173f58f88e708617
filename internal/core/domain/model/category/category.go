// Package category contains the Category entity used to group catalog
// items. Membership is stored on the item side as a set of category IDs,
// so the category itself stays free of object cycles.
package category

import (
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through the NewCategory factory method.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups catalog items under a display name.
type Category struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

// NewCategory creates a new Category with validation.
func NewCategory(id kernel.UUID, name string) (*Category, error) {
	c := &Category{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory reconstructs a Category from persistent storage.
func RestoreCategory(id kernel.UUID, name string) (*Category, error) {
	return NewCategory(id, name)
}

// Validate ensures the Category instance was properly constructed.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// IsEqual compares two categories by their unique identifiers.
func (c *Category) IsEqual(other *Category) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category's display name.
func (c *Category) Name() string {
	return c.name
}

// Rename changes the category's display name.
func (c *Category) Rename(name string) error {
	return c.setName(name)
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
