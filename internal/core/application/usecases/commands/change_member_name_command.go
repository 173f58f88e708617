package commands

import (
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var ErrChangeMemberNameCommandIsNotConstructed = errors.New(
	"ChangeMemberNameCommand must be created via NewChangeMemberNameCommand constructor",
)

// ChangeMemberNameCommand represents a request to rename an existing member.
type ChangeMemberNameCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewChangeMemberNameCommand creates a command to rename a member.
func NewChangeMemberNameCommand(memberID kernel.UUID, name string) (ChangeMemberNameCommand, error) {
	cmd := ChangeMemberNameCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setMemberID(memberID), cmd.setName(name)); err != nil {
		return ChangeMemberNameCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeMemberNameCommand) Validate() error {
	return c.guard.Validate(ErrChangeMemberNameCommandIsNotConstructed)
}

// MemberID returns the identifier of the member to rename.
func (c ChangeMemberNameCommand) MemberID() kernel.UUID {
	return c.memberID
}

// Name returns the new display name.
func (c ChangeMemberNameCommand) Name() string {
	return c.name
}

func (c *ChangeMemberNameCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}

func (c *ChangeMemberNameCommand) setName(name string) error {
	if name == "" {
		return ErrMemberNameIsRequired
	}

	c.name = name
	return nil
}
