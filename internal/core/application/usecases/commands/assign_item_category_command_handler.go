package commands

import (
	"context"
)

// AssignItemCategoryCommandHandler handles placing an item into a
// category. The category is loaded first so a dangling category ID is
// rejected before the item is touched.
type AssignItemCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewAssignItemCategoryCommandHandler creates a handler for item categorization.
func NewAssignItemCategoryCommandHandler(uowFactory CatalogUoWFactory) AssignItemCategoryCommandHandler {
	return AssignItemCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the categorization command.
func (h *AssignItemCategoryCommandHandler) Handle(ctx context.Context, cmd AssignItemCategoryCommand) error {
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

	cat, err := uow.CategoryRepository().Get(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	it, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = it.AssignCategory(cat.ID()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
