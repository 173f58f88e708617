// Package member contains the Member aggregate: a registered customer with
// a name and a home address. A member's orders are not held as an object
// collection; they are looked up by member ID through the order repository,
// which keeps the object graph cycle-free.
package member

import (
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

// ErrMemberIsNotConstructed is returned when a Member instance was not
// created through the NewMember factory method.
var ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")

// Member represents a registered customer.
//
// Member follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Must have a properly constructed home address
//
// Name uniqueness across members is enforced at the registration boundary,
// not by the aggregate.
type Member struct {
	id      kernel.UUID
	name    string
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewMember creates a new Member with validation.
func NewMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	m := &Member{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(m.setID(id), m.setName(name), m.setAddress(address)); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMember reconstructs a Member from persistent storage.
func RestoreMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	return NewMember(id, name, address)
}

// Validate ensures the Member instance was properly constructed.
func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

// IsEqual compares two members by their unique identifiers.
func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the member's unique identifier.
func (m *Member) ID() kernel.UUID {
	return m.id
}

// Name returns the member's display name.
func (m *Member) Name() string {
	return m.name
}

// Address returns the member's home address. New deliveries are shipped to
// this address.
func (m *Member) Address() kernel.Address {
	return m.address
}

// ChangeName updates the member's display name.
func (m *Member) ChangeName(name string) error {
	return m.setName(name)
}

func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	m.name = name
	return nil
}

func (m *Member) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	m.address = address
	return nil
}
