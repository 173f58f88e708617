package ports

import (
	"context"
	"time"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/order"
)

// OrderRepository persists and loads Order aggregates. The owned delivery
// and order items are saved and loaded together with the order root.
type OrderRepository interface {
	// Add saves a new order aggregate, cascading to its delivery and
	// order items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update saves an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by ID. Returns errs.ObjectNotFoundError when
	// no order with the given ID exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByMember retrieves all orders placed by the given member.
	// This is how a member's order history is navigated; the Member
	// aggregate holds no order collection.
	GetAllByMember(ctx context.Context, memberID kernel.UUID) ([]*order.Order, error)

	// GetAllPlacedBefore retrieves all orders in Placed status whose order
	// date is before the cutoff and whose delivery has not completed yet.
	// Used by the delivery completion job.
	GetAllPlacedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
