package commands

import (
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCountIsInvalid = errors.New("count must be greater than 0")
)

// PlaceOrderCommand represents a member's request to order an item.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), memberID, itemID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	memberID kernel.UUID
	itemID   kernel.UUID
	count    int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order of count units
// of one item for a member.
func NewPlaceOrderCommand(orderID, memberID, itemID kernel.UUID, count int) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMemberID(memberID),
		cmd.setItemID(itemID),
		cmd.setCount(count),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MemberID returns the identifier of the ordering member.
func (c PlaceOrderCommand) MemberID() kernel.UUID {
	return c.memberID
}

// ItemID returns the identifier of the ordered item.
func (c PlaceOrderCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Count returns the ordered quantity.
func (c PlaceOrderCommand) Count() int {
	return c.count
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}

func (c *PlaceOrderCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *PlaceOrderCommand) setCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: %d", ErrCountIsInvalid, count)
	}

	c.count = count
	return nil
}
