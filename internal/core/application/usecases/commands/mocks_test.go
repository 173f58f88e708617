package commands_test

import (
	"context"
	"errors"
	"time"

	"bookshop/internal/core/application/usecases/commands"
	"bookshop/internal/core/domain/model/category"
	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"
	"bookshop/internal/core/domain/model/order"
	"bookshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockMemberRepository struct{ mock.Mock }

func (m *MockMemberRepository) Add(ctx context.Context, mb *member.Member) error {
	args := m.Called(ctx, mb)
	return args.Error(0)
}
func (m *MockMemberRepository) Update(ctx context.Context, mb *member.Member) error {
	args := m.Called(ctx, mb)
	return args.Error(0)
}
func (m *MockMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}
func (m *MockMemberRepository) GetAll(_ context.Context) ([]*member.Member, error) {
	return nil, errors.New("not implemented in mock")
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, it *item.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}
func (m *MockItemRepository) Update(ctx context.Context, it *item.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}
func (m *MockItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}
func (m *MockItemRepository) GetAll(_ context.Context) ([]*item.Item, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, c *category.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}
func (m *MockCategoryRepository) GetAll(_ context.Context) ([]*category.Category, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllByMember(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllPlacedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// mockTx embeds the transaction lifecycle shared by every UoW mock.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockMemberUoW struct{ mockTx }

func (m *MockMemberUoW) MemberRepository() ports.MemberRepository {
	args := m.Called()
	return args.Get(0).(ports.MemberRepository)
}

type MockMemberUoWFactory struct{ mock.Mock }

func (m *MockMemberUoWFactory) Create() commands.MemberUoW {
	args := m.Called()
	return args.Get(0).(commands.MemberUoW)
}

type MockItemUoW struct{ mockTx }

func (m *MockItemUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockItemUoWFactory struct{ mock.Mock }

func (m *MockItemUoWFactory) Create() commands.ItemUoW {
	args := m.Called()
	return args.Get(0).(commands.ItemUoW)
}

type MockCategoryUoW struct{ mockTx }

func (m *MockCategoryUoW) CategoryRepository() ports.CategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryRepository)
}

type MockCategoryUoWFactory struct{ mock.Mock }

func (m *MockCategoryUoWFactory) Create() commands.CategoryUoW {
	args := m.Called()
	return args.Get(0).(commands.CategoryUoW)
}

type MockCatalogUoW struct{ mockTx }

func (m *MockCatalogUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}
func (m *MockCatalogUoW) CategoryRepository() ports.CategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockPlaceOrderUoW struct{ mockTx }

func (m *MockPlaceOrderUoW) MemberRepository() ports.MemberRepository {
	args := m.Called()
	return args.Get(0).(ports.MemberRepository)
}
func (m *MockPlaceOrderUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}
func (m *MockPlaceOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}

type MockCancelOrderUoW struct{ mockTx }

func (m *MockCancelOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCancelOrderUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockCancelOrderUoWFactory struct{ mock.Mock }

func (m *MockCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CancelOrderUoW)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
