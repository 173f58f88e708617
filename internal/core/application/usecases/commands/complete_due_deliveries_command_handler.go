package commands

import (
	"context"

	"bookshop/internal/core/domain/model/order"
)

// CompleteDueDeliveriesCommandHandler completes the deliveries of all
// placed orders older than the command's cutoff. All updates occur within
// a single transaction; orders whose deliveries already completed are
// skipped.
type CompleteDueDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteDueDeliveriesCommandHandler creates a handler for the delivery sweep.
func NewCompleteDueDeliveriesCommandHandler(uowFactory OrderUoWFactory) CompleteDueDeliveriesCommandHandler {
	return CompleteDueDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery sweep command.
func (h *CompleteDueDeliveriesCommandHandler) Handle(ctx context.Context, cmd CompleteDueDeliveriesCommand) error {
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
	orders, err := orderRepo.GetAllPlacedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return err
	}

	for _, o := range orders {
		if o.Delivery().Status() == order.DeliveryCompleted {
			continue
		}

		if err = o.CompleteDelivery(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
