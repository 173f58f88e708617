// Package order contains the Order aggregate: the order root together with
// the order items and the delivery it exclusively owns. The aggregate is
// persisted and loaded as one transactional unit.
//
// Order items snapshot the item price and count at order time, so the
// order total is independent of later catalog price changes. Stock is
// decremented exactly once per order item, inside NewOrderItem, and handed
// back on cancellation through the restock list returned by Order.Cancel.
//
// References leaving the aggregate (the ordering member, the ordered items)
// are held as IDs and resolved through repositories at the point of use.
package order
