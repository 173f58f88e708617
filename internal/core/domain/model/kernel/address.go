package kernel

import (
	"errors"
	"fmt"

	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an
// improperly initialized Address. Addresses must be created using the
// NewAddress constructor to ensure all fields are present.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a shipping address as an immutable value object.
// It has no identity of its own and is embedded into the aggregates that
// need it (a member's home address, a delivery's destination). Two
// addresses are equal when all their fields are equal.
//
// The zero value of Address is invalid and will fail validation - use the
// NewAddress constructor to create instances.
//
// Example:
//
//	addr, err := kernel.NewAddress("Seoul", "Gangga", "123-123")
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	city    string
	street  string
	zipcode string
	guard   guard.ConstructorGuard
}

// NewAddress creates a new Address with the specified fields.
// All three fields are required; an aggregated error is returned when any
// of them is empty.
func NewAddress(city, street, zipcode string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setCity(city), addr.setStreet(street), addr.setZipcode(zipcode)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed using the
// constructor. The zero value of Address fails this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// City returns the city component of the address.
func (a Address) City() string {
	return a.city
}

// Street returns the street component of the address.
func (a Address) Street() string {
	return a.street
}

// Zipcode returns the postal code component of the address.
func (a Address) Zipcode() string {
	return a.zipcode
}

// String returns a human-readable single-line representation of the address.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s (%s)", a.city, a.street, a.zipcode)
}

// IsEqual compares two addresses by value.
// Both addresses must be properly constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

// setCity sets the city with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers. The private setters enable self-encapsulated validation
// during object construction.
func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	a.city = city
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}

	a.street = street
	return nil
}

func (a *Address) setZipcode(zipcode string) error {
	if zipcode == "" {
		return errs.NewValueIsRequiredError("zipcode")
	}

	a.zipcode = zipcode
	return nil
}
