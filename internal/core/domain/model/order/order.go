package order

import (
	"errors"
	"time"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyDelivered indicates a cancellation attempt on an order
	// whose delivery has already completed. Shipped orders cannot be
	// cancelled.
	ErrOrderAlreadyDelivered = errors.New("order with a completed delivery cannot be cancelled")

	// ErrOrderItemsAreRequired indicates an attempt to create an order with
	// no order items.
	ErrOrderItemsAreRequired = errs.NewValueIsRequiredError("order items")
)

// Restock instructs the caller to return count units of stock to the item
// identified by ItemID. Order.Cancel returns one Restock per order item;
// the enclosing transaction loads each item and applies AddStock.
type Restock struct {
	ItemID kernel.UUID
	Count  int
}

// Order is the aggregate root tying together the ordering member, the
// delivery and the ordered item snapshots.
//
// Order follows these invariants:
//   - Must have at least one order item
//   - Owns its Delivery and OrderItems exclusively; they are persisted and
//     removed together with the order
//   - Status moves only Placed -> Cancelled, never back
//   - Total price is computed from the order-item snapshots, not from the
//     live catalog
//
// The ordering member is referenced by ID only; the member's orders are
// found by querying, not by walking a back-pointer.
type Order struct {
	id         kernel.UUID
	memberID   kernel.UUID
	delivery   *Delivery
	orderItems []*OrderItem
	orderDate  time.Time
	status     Status

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Placed status with orderDate set to now.
// The order items must already exist, meaning their stock decrement has
// already happened; when building them one by one fails with
// item.ErrInsufficientStock, the caller must abandon the whole transaction
// so no partial stock change persists.
func NewOrder(id, memberID kernel.UUID, delivery *Delivery, orderItems ...*OrderItem) (*Order, error) {
	o := &Order{
		status:    Placed,
		orderDate: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setMemberID(memberID),
		o.setDelivery(delivery),
		o.setOrderItems(orderItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including
// its status and order date.
func RestoreOrder(
	id, memberID kernel.UUID,
	delivery *Delivery,
	orderItems []*OrderItem,
	orderDate time.Time,
	status Status,
) (*Order, error) {
	o := &Order{
		orderDate: orderDate,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setMemberID(memberID),
		o.setDelivery(delivery),
		o.setOrderItems(orderItems),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// MemberID returns the identifier of the member who placed the order.
func (o *Order) MemberID() kernel.UUID {
	return o.memberID
}

// Delivery returns the delivery owned by this order.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// OrderItems returns the order-item snapshots owned by this order.
// The returned slice is a copy; the snapshots themselves are immutable.
func (o *Order) OrderItems() []*OrderItem {
	items := make([]*OrderItem, len(o.orderItems))
	copy(items, o.orderItems)
	return items
}

// OrderDate returns the time the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Cancel cancels the order and returns the restock list: one entry per
// order item telling the caller which item gets how many units back.
//
// Cancel is idempotent: cancelling an already-cancelled order is a no-op
// returning an empty restock list, so stock can never be double-restored.
// Fails with ErrOrderAlreadyDelivered when the delivery has completed;
// status and stock are left unchanged in that case.
func (o *Order) Cancel() ([]Restock, error) {
	if o.status == Cancelled {
		return nil, nil
	}

	if o.delivery.Status() == DeliveryCompleted {
		return nil, ErrOrderAlreadyDelivered
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return nil, err
	}
	o.status = newStatus

	restocks := make([]Restock, 0, len(o.orderItems))
	for _, oi := range o.orderItems {
		restocks = append(restocks, Restock{ItemID: oi.ItemID(), Count: oi.Count()})
	}

	return restocks, nil
}

// CompleteDelivery marks the order's delivery as delivered.
// After completion the order is no longer cancellable.
func (o *Order) CompleteDelivery() error {
	return o.delivery.Complete()
}

// TotalPrice returns the sum of the order items' total prices. Pure read,
// computed from the snapshots taken at order time.
func (o *Order) TotalPrice() int {
	total := 0
	for _, oi := range o.orderItems {
		total += oi.TotalPrice()
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	o.memberID = memberID
	return nil
}

func (o *Order) setDelivery(delivery *Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setOrderItems(orderItems []*OrderItem) error {
	if len(orderItems) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, oi := range orderItems {
		if err := oi.Validate(); err != nil {
			return err
		}
	}

	o.orderItems = make([]*OrderItem, len(orderItems))
	copy(o.orderItems, orderItems)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
