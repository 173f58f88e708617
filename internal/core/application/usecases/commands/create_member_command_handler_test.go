package commands_test

import (
	"errors"
	"testing"

	"bookshop/internal/core/application/usecases/commands"
	"bookshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMemberCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "06000")
	require.NoError(t, err)
	cmd, err := commands.NewCreateMemberCommand(kernel.NewUUID(), "memberA", address)
	require.NoError(t, err)

	repo := new(MockMemberRepository)
	uow := new(MockMemberUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*member.Member")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMemberUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMemberCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateMemberCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateMemberCommand{} // not constructed properly
	factory := new(MockMemberUoWFactory)
	h := commands.NewCreateMemberCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateMemberCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "06000")
	require.NoError(t, err)
	cmd, err := commands.NewCreateMemberCommand(kernel.NewUUID(), "memberA", address)
	require.NoError(t, err)

	repo := new(MockMemberRepository)
	uow := new(MockMemberUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*member.Member")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMemberUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMemberCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
