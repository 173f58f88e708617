package commands

import (
	"context"

	"bookshop/internal/core/domain/model/item"
)

// CreateBookCommandHandler handles adding a new book to the catalog.
type CreateBookCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewCreateBookCommandHandler creates a handler for catalog additions.
func NewCreateBookCommandHandler(uowFactory ItemUoWFactory) CreateBookCommandHandler {
	return CreateBookCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the book creation command.
func (h *CreateBookCommandHandler) Handle(ctx context.Context, cmd CreateBookCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	it, err := item.NewItem(
		cmd.ItemID(),
		cmd.Name(),
		cmd.Price(),
		cmd.StockQuantity(),
		item.NewBook(cmd.Author(), cmd.ISBN()),
	)
	if err != nil {
		return err
	}

	if err = uow.ItemRepository().Add(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
