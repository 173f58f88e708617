package item

import (
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var (
	// ErrInsufficientStock indicates an attempted stock decrement below zero.
	// The mutation is not applied when this error is returned.
	ErrInsufficientStock = errors.New("not enough stock for the requested quantity")

	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory methods.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

	// ErrDetailsAreRequired indicates that an item was constructed without
	// its variant-specific details.
	ErrDetailsAreRequired = errs.NewValueIsRequiredError("item details")
)

// Item is the aggregate root for a catalog entry. It owns the price and the
// available stock quantity of a sellable good and carries the
// variant-specific Details (a book's author and ISBN).
//
// Item maintains these invariants:
//   - stockQuantity is never negative; every decrement is checked first
//   - price and stockQuantity are non-negative at construction time
//   - category membership is a set of category IDs with no duplicates
//
// Private fields ensure all mutations go through validated methods.
type Item struct {
	id            kernel.UUID
	name          string
	price         int
	stockQuantity int
	details       Details
	categoryIDs   []kernel.UUID
	version       int

	guard guard.ConstructorGuard
}

// NewItem creates a new catalog Item with validation. This is the entry
// point used at catalog-load time; items restored from the database go
// through RestoreItem instead.
func NewItem(id kernel.UUID, name string, price, stockQuantity int, details Details) (*Item, error) {
	it := &Item{
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setPrice(price),
		it.setStockQuantity(stockQuantity),
		it.setDetails(details),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// RestoreItem reconstructs an Item from persistent storage, including its
// category memberships and aggregate version. The restored item behaves
// identically to one created through NewItem.
func RestoreItem(
	id kernel.UUID,
	name string,
	price, stockQuantity int,
	details Details,
	categoryIDs []kernel.UUID,
	version int,
) (*Item, error) {
	it, err := NewItem(id, name, price, stockQuantity, details)
	if err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("version")
	}
	it.version = version

	for _, categoryID := range categoryIDs {
		if err = it.AssignCategory(categoryID); err != nil {
			return nil, err
		}
	}

	return it, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current per-unit price. Orders snapshot this value at
// order time; later price changes do not affect existing orders.
func (i *Item) Price() int {
	return i.price
}

// StockQuantity returns the currently available stock.
func (i *Item) StockQuantity() int {
	return i.stockQuantity
}

// Version returns the aggregate version used for optimistic concurrency
// checks on write. Starts at 1 for new items.
func (i *Item) Version() int {
	return i.version
}

// Details returns the variant-specific fields of the item.
func (i *Item) Details() Details {
	return i.details
}

// CategoryIDs returns the identifiers of the categories this item belongs to.
// The returned slice is a copy.
func (i *Item) CategoryIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(i.categoryIDs))
	copy(ids, i.categoryIDs)
	return ids
}

// AddStock increases the available stock by quantity.
// Quantity must not be negative; there is no upper bound.
func (i *Item) AddStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	i.stockQuantity += quantity
	return nil
}

// RemoveStock decreases the available stock by quantity.
// Returns ErrInsufficientStock when the decrement would drive the stock
// below zero; the stock is left unchanged in that case.
func (i *Item) RemoveStock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	rest := i.stockQuantity - quantity
	if rest < 0 {
		return ErrInsufficientStock
	}

	i.stockQuantity = rest
	return nil
}

// Change replaces the three mutable catalog fields in one operation.
// Field-level validation matches construction: name required, price and
// stock non-negative.
func (i *Item) Change(name string, price, stockQuantity int) error {
	return errors.Join(
		i.setName(name),
		i.setPrice(price),
		i.setStockQuantity(stockQuantity),
	)
}

// AssignCategory adds the item to a category. Assigning a category the item
// already belongs to is a no-op.
func (i *Item) AssignCategory(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	for _, existing := range i.categoryIDs {
		if existing.IsEqual(categoryID) {
			return nil
		}
	}

	i.categoryIDs = append(i.categoryIDs, categoryID)
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%d is negative", price),
		)
	}

	i.price = price
	return nil
}

func (i *Item) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stockQuantity is invalid",
			fmt.Errorf("%d is negative", stockQuantity),
		)
	}

	i.stockQuantity = stockQuantity
	return nil
}

func (i *Item) setDetails(details Details) error {
	if details == nil {
		return ErrDetailsAreRequired
	}

	i.details = details
	return nil
}
