package commands

import (
	"context"
)

// ChangeMemberNameCommandHandler handles renaming an existing member.
// Loads the member, applies the new name and persists the change in one
// transaction.
type ChangeMemberNameCommandHandler struct {
	uowFactory MemberUoWFactory
}

// NewChangeMemberNameCommandHandler creates a handler for member renames.
func NewChangeMemberNameCommandHandler(uowFactory MemberUoWFactory) ChangeMemberNameCommandHandler {
	return ChangeMemberNameCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rename command.
func (h *ChangeMemberNameCommandHandler) Handle(ctx context.Context, cmd ChangeMemberNameCommand) error {
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

	memberRepo := uow.MemberRepository()
	m, err := memberRepo.Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	if err = m.ChangeName(cmd.Name()); err != nil {
		return err
	}

	if err = memberRepo.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
