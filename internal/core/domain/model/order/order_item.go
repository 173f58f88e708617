package order

import (
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was
// not created through the NewOrderItem or RestoreOrderItem factory methods.
var ErrOrderItemIsNotConstructed = errors.New(
	"OrderItem must be created via NewOrderItem or RestoreOrderItem constructor")

// OrderItem is a snapshot of one ordered catalog item: the per-unit price
// and count recorded at order time. The snapshot is immutable after
// creation and keeps the order total independent of later catalog price
// changes. It references the item by ID only.
type OrderItem struct {
	id         kernel.UUID
	itemID     kernel.UUID
	orderPrice int
	count      int

	guard guard.ConstructorGuard
}

// NewOrderItem creates an order-item snapshot for the given catalog item
// and decrements the item's stock by count. This is the sole place stock
// is decremented when ordering; item.ErrInsufficientStock propagates and
// no snapshot is created in that case.
//
// orderPrice is passed explicitly rather than read from the item so the
// caller can apply a discounted price; it must not be negative.
func NewOrderItem(id kernel.UUID, it *item.Item, orderPrice, count int) (*OrderItem, error) {
	oi := &OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		oi.setID(id),
		it.Validate(),
		oi.setOrderPrice(orderPrice),
		oi.setCount(count),
	); err != nil {
		return nil, err
	}

	if err := it.RemoveStock(count); err != nil {
		return nil, err
	}

	oi.itemID = it.ID()
	return oi, nil
}

// RestoreOrderItem reconstructs an OrderItem from persistent storage.
// Unlike NewOrderItem it has no stock side effect.
func RestoreOrderItem(id, itemID kernel.UUID, orderPrice, count int) (*OrderItem, error) {
	oi := &OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		oi.setID(id),
		oi.setItemID(itemID),
		oi.setOrderPrice(orderPrice),
		oi.setCount(count),
	); err != nil {
		return nil, err
	}

	return oi, nil
}

// Validate ensures the OrderItem instance was properly constructed.
func (oi *OrderItem) Validate() error {
	if oi == nil {
		return ErrOrderItemIsNotConstructed
	}
	return oi.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ID returns the order item's unique identifier.
func (oi *OrderItem) ID() kernel.UUID {
	return oi.id
}

// ItemID returns the identifier of the ordered catalog item.
func (oi *OrderItem) ItemID() kernel.UUID {
	return oi.itemID
}

// OrderPrice returns the per-unit price recorded at order time.
func (oi *OrderItem) OrderPrice() int {
	return oi.orderPrice
}

// Count returns the ordered quantity.
func (oi *OrderItem) Count() int {
	return oi.count
}

// TotalPrice returns orderPrice multiplied by count. Pure read.
func (oi *OrderItem) TotalPrice() int {
	return oi.orderPrice * oi.count
}

func (oi *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	oi.id = id
	return nil
}

func (oi *OrderItem) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	oi.itemID = itemID
	return nil
}

func (oi *OrderItem) setOrderPrice(orderPrice int) error {
	if orderPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderPrice is invalid",
			fmt.Errorf("%d is negative", orderPrice),
		)
	}
	oi.orderPrice = orderPrice
	return nil
}

func (oi *OrderItem) setCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"count is invalid",
			fmt.Errorf("%d is not greater than 0", count),
		)
	}
	oi.count = count
	return nil
}
