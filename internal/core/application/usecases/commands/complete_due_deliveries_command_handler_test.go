package commands_test

import (
	"testing"
	"time"

	"bookshop/internal/core/application/usecases/commands"
	"bookshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteDueDeliveriesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o1, _ := cancelOrderFixtures(t)
	o2, _ := cancelOrderFixtures(t)

	cutoff := time.Now()
	cmd, err := commands.NewCompleteDueDeliveriesCommand(cutoff)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPlacedBefore", ctx, cutoff).Return([]*order.Order{o1, o2}, nil).Once(),
		orderRepo.On("Update", ctx, o1).Return(nil).Once(),
		orderRepo.On("Update", ctx, o2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDueDeliveriesCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.DeliveryCompleted, o1.Delivery().Status())
	assert.Equal(t, order.DeliveryCompleted, o2.Delivery().Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteDueDeliveriesCommandHandler_Handle_SkipsCompleted(t *testing.T) {
	ctx := t.Context()
	o, _ := cancelOrderFixtures(t)
	require.NoError(t, o.CompleteDelivery())

	cutoff := time.Now()
	cmd, err := commands.NewCompleteDueDeliveriesCommand(cutoff)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPlacedBefore", ctx, cutoff).Return([]*order.Order{o}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDueDeliveriesCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
