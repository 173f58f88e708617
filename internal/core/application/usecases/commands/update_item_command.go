package commands

import (
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a request to overwrite a catalog item's
// name, price and stock quantity. The item is loaded, mutated and saved
// rather than replaced, so its identity and details are preserved.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID        kernel.UUID
	name          string
	price         int
	stockQuantity int

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to update a catalog item.
func NewUpdateItemCommand(
	itemID kernel.UUID,
	name string,
	price, stockQuantity int,
) (UpdateItemCommand, error) {
	cmd := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStockQuantity(stockQuantity),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to update.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new display name.
func (c UpdateItemCommand) Name() string {
	return c.name
}

// Price returns the new per-unit price.
func (c UpdateItemCommand) Price() int {
	return c.price
}

// StockQuantity returns the new stock quantity.
func (c UpdateItemCommand) StockQuantity() int {
	return c.stockQuantity
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateItemCommand) setPrice(price int) error {
	if price < 0 {
		return fmt.Errorf("%w: %d", ErrPriceIsInvalid, price)
	}

	c.price = price
	return nil
}

func (c *UpdateItemCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return fmt.Errorf("%w: %d", ErrStockIsInvalid, stockQuantity)
	}

	c.stockQuantity = stockQuantity
	return nil
}
