package order_test

import (
	"testing"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookItem(t *testing.T, price, stock int) *item.Item {
	t.Helper()
	it, err := item.NewItem(kernel.NewUUID(), "Country JPA", price, stock, item.NewBook("Kim", "isbn"))
	require.NoError(t, err)
	return it
}

func TestNewOrderItem(t *testing.T) {
	t.Run("snapshots_price_and_decrements_stock", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		oi, err := order.NewOrderItem(kernel.NewUUID(), it, it.Price(), 2)

		require.NoError(t, err)
		require.NoError(t, oi.Validate())
		assert.True(t, it.ID().IsEqual(oi.ItemID()))
		assert.Equal(t, 10000, oi.OrderPrice())
		assert.Equal(t, 2, oi.Count())
		assert.Equal(t, 8, it.StockQuantity())
	})

	t.Run("price_snapshot_survives_catalog_price_change", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)
		oi, err := order.NewOrderItem(kernel.NewUUID(), it, it.Price(), 2)
		require.NoError(t, err)

		require.NoError(t, it.Change(it.Name(), 99000, it.StockQuantity()))

		assert.Equal(t, 10000, oi.OrderPrice())
		assert.Equal(t, 20000, oi.TotalPrice())
	})

	t.Run("propagates_insufficient_stock_and_creates_nothing", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		oi, err := order.NewOrderItem(kernel.NewUUID(), it, it.Price(), 11)

		require.ErrorIs(t, err, item.ErrInsufficientStock)
		assert.Nil(t, oi)
		assert.Equal(t, 10, it.StockQuantity())
	})

	t.Run("rejects_non_positive_count", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		_, err := order.NewOrderItem(kernel.NewUUID(), it, it.Price(), 0)

		require.Error(t, err)
		assert.Equal(t, 10, it.StockQuantity())
	})

	t.Run("rejects_negative_order_price", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		_, err := order.NewOrderItem(kernel.NewUUID(), it, -1, 2)

		require.Error(t, err)
		assert.Equal(t, 10, it.StockQuantity())
	})

	t.Run("rejects_unconstructed_item", func(t *testing.T) {
		_, err := order.NewOrderItem(kernel.NewUUID(), nil, 10000, 2)
		require.Error(t, err)
	})
}

func TestOrderItem_TotalPrice(t *testing.T) {
	it := newBookItem(t, 10000, 10)

	oi, err := order.NewOrderItem(kernel.NewUUID(), it, 10000, 2)
	require.NoError(t, err)

	assert.Equal(t, 20000, oi.TotalPrice())
}

func TestRestoreOrderItem(t *testing.T) {
	t.Run("restores_without_stock_side_effect", func(t *testing.T) {
		id := kernel.NewUUID()
		itemID := kernel.NewUUID()

		oi, err := order.RestoreOrderItem(id, itemID, 10000, 2)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(oi.ID()))
		assert.True(t, itemID.IsEqual(oi.ItemID()))
		assert.Equal(t, 20000, oi.TotalPrice())
	})

	t.Run("rejects_invalid_fields", func(t *testing.T) {
		_, err := order.RestoreOrderItem(kernel.NewUUID(), kernel.UUID{}, 10000, 2)
		require.Error(t, err)

		_, err = order.RestoreOrderItem(kernel.NewUUID(), kernel.NewUUID(), 10000, 0)
		require.Error(t, err)
	})
}
