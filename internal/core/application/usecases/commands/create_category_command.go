package commands

import (
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var (
	ErrCreateCategoryCommandIsNotConstructed = errors.New(
		"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
	)
	ErrCategoryNameIsRequired = errors.New("category name is required")
)

// CreateCategoryCommand represents a request to create a catalog category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a category.
func NewCreateCategoryCommand(categoryID kernel.UUID, name string) (CreateCategoryCommand, error) {
	cmd := CreateCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setCategoryID(categoryID), cmd.setName(name)); err != nil {
		return CreateCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// CategoryID returns the identifier for the new category.
func (c CreateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the category name.
func (c CreateCategoryCommand) Name() string {
	return c.name
}

func (c *CreateCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *CreateCategoryCommand) setName(name string) error {
	if name == "" {
		return ErrCategoryNameIsRequired
	}

	c.name = name
	return nil
}
