package queries

import (
	"context"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/order"
	"bookshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order as flat rows straight from the
// database, joining the member, delivery and order lines in one query.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns one row per order line; returns
// errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	results := make([]GetOrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			m.name,
			o.order_date,
			o.status,
			d.city,
			d.street,
			d.zipcode,
			d.status,
			i.name,
			oi.order_price,
			oi.count
		FROM orders o
		JOIN members m ON m.id = o.member_id
		JOIN deliveries d ON d.order_id = o.id
		JOIN order_items oi ON oi.order_id = o.id
		JOIN items i ON i.id = oi.item_id
		WHERE o.id = ?
		ORDER BY oi.id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetOrderQueryResponse
		var id uuid.UUID
		var status int
		var deliveryStatus int

		err = rows.Scan(
			&id,
			&row.MemberName,
			&row.OrderDate,
			&status,
			&row.City,
			&row.Street,
			&row.Zipcode,
			&deliveryStatus,
			&row.ItemName,
			&row.OrderPrice,
			&row.Count,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.OrderID = orderID
		row.Status = order.Status(status).String()
		row.DeliveryStatus = order.DeliveryStatus(deliveryStatus).String()

		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return results, nil
}
