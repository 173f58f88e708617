package order

import (
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory methods.
var ErrDeliveryIsNotConstructed = errors.New(
	"Delivery must be created via NewDelivery or RestoreDelivery constructor")

// DeliveryStatus represents the shipping state of an order's delivery.
//
//	DeliveryReady ──> DeliveryCompleted
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined delivery status.
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryReady is the initial status: the parcel has not shipped yet.
	// Orders are cancellable while their delivery is in this status.
	DeliveryReady

	// DeliveryCompleted indicates the parcel was delivered.
	// Orders with a completed delivery can no longer be cancelled.
	DeliveryCompleted
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown:   "Unknown",
		DeliveryReady:     "Ready",
		DeliveryCompleted: "Completed",
	}
}

// Validate checks if the DeliveryStatus value is valid.
func (s DeliveryStatus) Validate() error {
	if s != DeliveryReady && s != DeliveryCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the delivery status.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Complete transitions the delivery status to DeliveryCompleted.
// Only DeliveryReady may complete; completing twice is an error.
func (s DeliveryStatus) Complete() (DeliveryStatus, error) {
	if s != DeliveryReady {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return DeliveryCompleted, nil
}

// Delivery is the shipping leg of an order. It is owned exclusively by its
// Order and persisted as part of the order aggregate; it carries no
// back-pointer to the order.
type Delivery struct {
	id      kernel.UUID
	address kernel.Address
	status  DeliveryStatus

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery to the given address in DeliveryReady
// status. Called when an order is placed, with the member's home address.
func NewDelivery(id kernel.UUID, address kernel.Address) (*Delivery, error) {
	d := &Delivery{
		status: DeliveryReady,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(d.setID(id), d.setAddress(address)); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
func RestoreDelivery(id kernel.UUID, address kernel.Address, status DeliveryStatus) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(d.setID(id), d.setAddress(address), d.setStatus(status)); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Address returns the shipping destination.
func (d *Delivery) Address() kernel.Address {
	return d.address
}

// Status returns the current shipping status.
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// Complete marks the delivery as delivered.
// Fails when the delivery is not in DeliveryReady status.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}

func (d *Delivery) setStatus(status DeliveryStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
