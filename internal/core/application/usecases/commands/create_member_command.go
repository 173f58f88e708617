package commands

import (
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var (
	ErrCreateMemberCommandIsNotConstructed = errors.New(
		"CreateMemberCommand must be created via NewCreateMemberCommand constructor",
	)
	ErrMemberNameIsRequired = errors.New("member name is required")
)

// CreateMemberCommand represents a request to register a new member with a
// name and home address.
//
// Example:
//
//	address, err := kernel.NewAddress("Seoul", "Gangga", "123-123")
//	if err != nil {
//	    return fmt.Errorf("invalid address: %w", err)
//	}
//
//	cmd, err := NewCreateMemberCommand(kernel.NewUUID(), "member1", address)
//	if err != nil {
//	    return fmt.Errorf("invalid member data: %w", err)
//	}
//
//	handler := NewCreateMemberCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register member: %w", err)
//	}
type CreateMemberCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	name     string
	address  kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateMemberCommand creates a command to register a new member.
// The address must already be a valid kernel.Address.
func NewCreateMemberCommand(memberID kernel.UUID, name string, address kernel.Address) (CreateMemberCommand, error) {
	cmd := CreateMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMemberID(memberID),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return CreateMemberCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMemberCommand) Validate() error {
	return c.guard.Validate(ErrCreateMemberCommandIsNotConstructed)
}

// MemberID returns the unique identifier for the new member.
func (c CreateMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

// Name returns the member's display name.
func (c CreateMemberCommand) Name() string {
	return c.name
}

// Address returns the member's home address.
func (c CreateMemberCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateMemberCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}

func (c *CreateMemberCommand) setName(name string) error {
	if name == "" {
		return ErrMemberNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMemberCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
