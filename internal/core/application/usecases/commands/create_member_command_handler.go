package commands

import (
	"context"

	"bookshop/internal/core/domain/model/member"
)

// CreateMemberCommandHandler handles the business logic for member
// registration. Uses a transaction to ensure the member is persisted or
// rolled back on error.
type CreateMemberCommandHandler struct {
	uowFactory MemberUoWFactory
}

// NewCreateMemberCommandHandler creates a handler for member registration.
func NewCreateMemberCommandHandler(uowFactory MemberUoWFactory) CreateMemberCommandHandler {
	return CreateMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the member registration command.
func (h *CreateMemberCommandHandler) Handle(ctx context.Context, cmd CreateMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	m, err := member.NewMember(cmd.MemberID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	if err = uow.MemberRepository().Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
