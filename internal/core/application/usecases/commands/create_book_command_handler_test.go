package commands_test

import (
	"errors"
	"testing"

	"bookshop/internal/core/application/usecases/commands"
	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBookCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBookCommand(
		kernel.NewUUID(), "Domain-Driven Design", 25000, 10, "Eric Evans", "978-0321125217",
	)
	require.NoError(t, err)

	var added *item.Item
	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*item.Item")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*item.Item)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBookCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, added)
	assert.Equal(t, cmd.ItemID(), added.ID())
	assert.Equal(t, "Domain-Driven Design", added.Name())
	assert.Equal(t, 25000, added.Price())
	assert.Equal(t, 10, added.StockQuantity())

	book, ok := added.Details().(item.Book)
	require.True(t, ok)
	assert.Equal(t, "Eric Evans", book.Author())
	assert.Equal(t, "978-0321125217", book.ISBN())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateBookCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateBookCommand{} // not constructed properly
	factory := new(MockItemUoWFactory)
	h := commands.NewCreateBookCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateBookCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBookCommand(
		kernel.NewUUID(), "Domain-Driven Design", 25000, 10, "Eric Evans", "978-0321125217",
	)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	uow := new(MockItemUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*item.Item")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBookCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
