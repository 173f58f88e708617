package commands

import (
	"errors"
	"time"

	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var ErrCompleteDueDeliveriesCommandIsNotConstructed = errors.New(
	"CompleteDueDeliveriesCommand must be created via NewCompleteDueDeliveriesCommand constructor",
)

// CompleteDueDeliveriesCommand triggers completion of every pending
// delivery whose order was placed before the cutoff. This batch operation
// simulates couriers finishing their rounds.
//
// Example:
//
//	cmd, err := NewCompleteDueDeliveriesCommand(time.Now().Add(-24 * time.Hour))
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCompleteDueDeliveriesCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Error("delivery sweep failed", "error", err)
//	}
type CompleteDueDeliveriesCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCompleteDueDeliveriesCommand creates a command to complete deliveries
// of orders placed before cutoff.
func NewCompleteDueDeliveriesCommand(cutoff time.Time) (CompleteDueDeliveriesCommand, error) {
	cmd := CompleteDueDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return CompleteDueDeliveriesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDueDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDueDeliveriesCommandIsNotConstructed)
}

// Cutoff returns the order-date threshold; orders placed before it have
// their deliveries completed.
func (c CompleteDueDeliveriesCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *CompleteDueDeliveriesCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	c.cutoff = cutoff
	return nil
}
