// Package queries contains read-only operations implementing the query
// side of the CQRS architecture. Query handlers bypass the domain model
// and read the database directly for performance.
package queries

import (
	"errors"
	"time"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its delivery and order lines.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	for _, row := range rows {
//	    fmt.Printf("%s x%d = %d\n", row.ItemName, row.Count, row.OrderPrice*row.Count)
//	}
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to read.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is one flat row of the order read model: order
// header, delivery and one order line joined together. An order with
// three lines yields three rows sharing the header columns.
type GetOrderQueryResponse struct {
	OrderID        kernel.UUID
	MemberName     string
	OrderDate      time.Time
	Status         string
	City           string
	Street         string
	Zipcode        string
	DeliveryStatus string
	ItemName       string
	OrderPrice     int
	Count          int
}
