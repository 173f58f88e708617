package commands

import (
	"context"
)

// UpdateItemCommandHandler handles editing a catalog item. Loads the
// item, applies the changes and persists them in one transaction so a
// stale edit never survives a concurrent stock movement.
type UpdateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for item edits.
func NewUpdateItemCommandHandler(uowFactory ItemUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item update command.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
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

	itemRepo := uow.ItemRepository()
	it, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = it.Change(cmd.Name(), cmd.Price(), cmd.StockQuantity()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
