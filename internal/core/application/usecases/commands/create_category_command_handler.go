package commands

import (
	"context"

	"bookshop/internal/core/domain/model/category"
)

// CreateCategoryCommandHandler handles creating catalog categories.
type CreateCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory CategoryUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the category creation command.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
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

	cat, err := category.NewCategory(cmd.CategoryID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.CategoryRepository().Add(ctx, cat); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
