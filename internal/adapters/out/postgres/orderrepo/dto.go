// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. The order aggregate cascades to its delivery and
// order items: all three are written and loaded together.
package orderrepo

import (
	"time"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The delivery and order items are owned rows linked by
// order_id and removed together with the order.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderDate time.Time `gorm:"not null"`
	Status    int       `gorm:"type:int;not null;index"`

	Delivery   DeliveryDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	OrderItems []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO represents the database structure for persisting the
// delivery leg of an order. The destination address is embedded.
type DeliveryDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Address AddressDTO `gorm:"embedded"`
	Status  int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AddressDTO represents the embedded destination address columns within
// the deliveries table.
type AddressDTO struct {
	City    string `gorm:"type:varchar(255);not null"`
	Street  string `gorm:"type:varchar(255);not null"`
	Zipcode string `gorm:"type:varchar(32);not null"`
}

// OrderItemDTO represents the database structure for persisting one order
// line: the item reference plus the price and count snapshotted at order
// time.
type OrderItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderPrice int       `gorm:"type:int;not null"`
	Count      int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, including the owned delivery and order item rows.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	delivery := o.Delivery()

	orderItems := make([]OrderItemDTO, 0, len(o.OrderItems()))
	for _, oi := range o.OrderItems() {
		orderItems = append(orderItems, OrderItemDTO{
			ID:         oi.ID().Bytes(),
			OrderID:    orderID,
			ItemID:     oi.ItemID().Bytes(),
			OrderPrice: oi.OrderPrice(),
			Count:      oi.Count(),
		})
	}

	return OrderDTO{
		ID:        orderID,
		MemberID:  o.MemberID().Bytes(),
		OrderDate: o.OrderDate(),
		Status:    int(o.Status()),
		Delivery: DeliveryDTO{
			ID:      delivery.ID().Bytes(),
			OrderID: orderID,
			Address: AddressDTO{
				City:    delivery.Address().City(),
				Street:  delivery.Address().Street(),
				Zipcode: delivery.Address().Zipcode(),
			},
			Status: int(delivery.Status()),
		},
		OrderItems: orderItems,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including delivery and order items
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	memberID, err := kernel.UUIDFromBytes(dto.MemberID[:])
	if err != nil {
		return nil, err
	}

	delivery, err := deliveryToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	orderItems := make([]*order.OrderItem, 0, len(dto.OrderItems))
	for _, oiDto := range dto.OrderItems {
		oi, oiErr := orderItemToDomain(oiDto)
		if oiErr != nil {
			return nil, oiErr
		}
		orderItems = append(orderItems, oi)
	}

	return order.RestoreOrder(id, memberID, delivery, orderItems, dto.OrderDate, order.Status(dto.Status))
}

// deliveryToDomain converts a delivery DTO to its domain entity using
// RestoreDelivery.
func deliveryToDomain(dto DeliveryDTO) (*order.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.Zipcode)
	if err != nil {
		return nil, err
	}

	return order.RestoreDelivery(id, address, order.DeliveryStatus(dto.Status))
}

// orderItemToDomain converts an order line DTO to its domain entity using
// RestoreOrderItem. No stock side effect happens on restore.
func orderItemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(id, itemID, dto.OrderPrice, dto.Count)
}
