package commands

import (
	"context"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles order placement. Within one
// transaction it loads the member and item, decrements the item's stock,
// builds the order aggregate with a delivery to the member's address and
// persists everything. Insufficient stock aborts the transaction, so the
// decrement never leaks.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	m, err := uow.MemberRepository().Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	it, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	delivery, err := order.NewDelivery(kernel.NewUUID(), m.Address())
	if err != nil {
		return err
	}

	orderItem, err := order.NewOrderItem(kernel.NewUUID(), it, it.Price(), cmd.Count())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), m.ID(), delivery, orderItem)
	if err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, it); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
