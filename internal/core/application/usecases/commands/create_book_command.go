package commands

import (
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var (
	ErrCreateBookCommandIsNotConstructed = errors.New(
		"CreateBookCommand must be created via NewCreateBookCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("item name is required")
	ErrPriceIsInvalid     = errors.New("price must not be negative")
	ErrStockIsInvalid     = errors.New("stock quantity must not be negative")
)

// CreateBookCommand represents a request to add a new book to the catalog.
//
// Example:
//
//	itemID := kernel.NewUUID()
//	cmd, err := NewCreateBookCommand(itemID, "Country JPA", 10000, 10, "Kim", "978-89-0000-000-0")
//	if err != nil {
//	    return fmt.Errorf("invalid book data: %w", err)
//	}
//
//	handler := NewCreateBookCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create book: %w", err)
//	}
type CreateBookCommand struct { //nolint:recvcheck //using for validation
	itemID        kernel.UUID
	name          string
	price         int
	stockQuantity int
	author        string
	isbn          string

	guard guard.ConstructorGuard
}

// NewCreateBookCommand creates a command to add a book to the catalog.
// Author and ISBN are accepted as-is; price and stock must not be negative.
func NewCreateBookCommand(
	itemID kernel.UUID,
	name string,
	price, stockQuantity int,
	author, isbn string,
) (CreateBookCommand, error) {
	cmd := CreateBookCommand{
		author: author,
		isbn:   isbn,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStockQuantity(stockQuantity),
	); err != nil {
		return CreateBookCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the new catalog item.
func (c CreateBookCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the book's display name.
func (c CreateBookCommand) Name() string {
	return c.name
}

// Price returns the per-unit price.
func (c CreateBookCommand) Price() int {
	return c.price
}

// StockQuantity returns the initial stock.
func (c CreateBookCommand) StockQuantity() int {
	return c.stockQuantity
}

// Author returns the book's author.
func (c CreateBookCommand) Author() string {
	return c.author
}

// ISBN returns the book's ISBN.
func (c CreateBookCommand) ISBN() string {
	return c.isbn
}

func (c *CreateBookCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateBookCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateBookCommand) setPrice(price int) error {
	if price < 0 {
		return fmt.Errorf("%w: %d", ErrPriceIsInvalid, price)
	}

	c.price = price
	return nil
}

func (c *CreateBookCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return fmt.Errorf("%w: %d", ErrStockIsInvalid, stockQuantity)
	}

	c.stockQuantity = stockQuantity
	return nil
}
