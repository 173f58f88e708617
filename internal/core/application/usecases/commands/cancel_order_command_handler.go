package commands

import (
	"context"
)

// CancelOrderCommandHandler handles order cancellation. Within one
// transaction it cancels the order and restores the stock of every
// ordered item. Cancelling an already-cancelled order commits without
// touching stock.
type CancelOrderCommandHandler struct {
	uowFactory CancelOrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory CancelOrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	restocks, err := o.Cancel()
	if err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	for _, restock := range restocks {
		it, err := itemRepo.Get(ctx, restock.ItemID)
		if err != nil {
			return err
		}

		if err = it.AddStock(restock.Count); err != nil {
			return err
		}

		if err = itemRepo.Update(ctx, it); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
