package commands

import (
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var ErrAssignItemCategoryCommandIsNotConstructed = errors.New(
	"AssignItemCategoryCommand must be created via NewAssignItemCategoryCommand constructor",
)

// AssignItemCategoryCommand represents a request to place a catalog item
// into a category.
type AssignItemCategoryCommand struct { //nolint:recvcheck //using for validation
	itemID     kernel.UUID
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignItemCategoryCommand creates a command to categorize an item.
func NewAssignItemCategoryCommand(itemID, categoryID kernel.UUID) (AssignItemCategoryCommand, error) {
	cmd := AssignItemCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setItemID(itemID), cmd.setCategoryID(categoryID)); err != nil {
		return AssignItemCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignItemCategoryCommand) Validate() error {
	return c.guard.Validate(ErrAssignItemCategoryCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to categorize.
func (c AssignItemCategoryCommand) ItemID() kernel.UUID {
	return c.itemID
}

// CategoryID returns the identifier of the target category.
func (c AssignItemCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c *AssignItemCategoryCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AssignItemCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}
