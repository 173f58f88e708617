package item_test

import (
	"testing"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookItem(t *testing.T, price, stock int) *item.Item {
	t.Helper()
	it, err := item.NewItem(kernel.NewUUID(), "Country JPA", price, stock, item.NewBook("Kim", "978-89-0000-000-0"))
	require.NoError(t, err)
	return it
}

func TestNewItem(t *testing.T) {
	t.Run("creates_valid_item", func(t *testing.T) {
		id := kernel.NewUUID()

		it, err := item.NewItem(id, "Country JPA", 10000, 10, item.NewBook("Kim", "978-89-0000-000-0"))

		require.NoError(t, err)
		require.NoError(t, it.Validate())
		assert.True(t, id.IsEqual(it.ID()))
		assert.Equal(t, "Country JPA", it.Name())
		assert.Equal(t, 10000, it.Price())
		assert.Equal(t, 10, it.StockQuantity())
		assert.Empty(t, it.CategoryIDs())

		book, ok := it.Details().(item.Book)
		require.True(t, ok)
		assert.Equal(t, item.KindBook, book.Kind())
		assert.Equal(t, "Kim", book.Author())
		assert.Equal(t, "978-89-0000-000-0", book.ISBN())
	})

	t.Run("rejects_invalid_arguments", func(t *testing.T) {
		tests := []struct {
			name     string
			itemName string
			price    int
			stock    int
			details  item.Details
		}{
			{"empty_name", "", 100, 1, item.NewBook("Kim", "isbn")},
			{"negative_price", "Book", -1, 1, item.NewBook("Kim", "isbn")},
			{"negative_stock", "Book", 100, -1, item.NewBook("Kim", "isbn")},
			{"nil_details", "Book", 100, 1, nil},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := item.NewItem(kernel.NewUUID(), tc.itemName, tc.price, tc.stock, tc.details)
				require.Error(t, err)
			})
		}
	})

	t.Run("rejects_zero_uuid", func(t *testing.T) {
		_, err := item.NewItem(kernel.UUID{}, "Book", 100, 1, item.NewBook("Kim", "isbn"))
		require.Error(t, err)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("nil_item_is_invalid", func(t *testing.T) {
		var it *item.Item
		require.ErrorIs(t, it.Validate(), item.ErrItemIsNotConstructed)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		it := &item.Item{}
		require.ErrorIs(t, it.Validate(), item.ErrItemIsNotConstructed)
	})
}

func TestItem_AddStock(t *testing.T) {
	t.Run("increases_stock", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		require.NoError(t, it.AddStock(5))

		assert.Equal(t, 15, it.StockQuantity())
	})

	t.Run("zero_quantity_is_a_noop", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		require.NoError(t, it.AddStock(0))

		assert.Equal(t, 10, it.StockQuantity())
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		err := it.AddStock(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 10, it.StockQuantity())
	})
}

func TestItem_RemoveStock(t *testing.T) {
	t.Run("decreases_stock_when_sufficient", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		require.NoError(t, it.RemoveStock(2))

		assert.Equal(t, 8, it.StockQuantity())
	})

	t.Run("can_drain_stock_to_zero", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		require.NoError(t, it.RemoveStock(10))

		assert.Equal(t, 0, it.StockQuantity())
	})

	t.Run("fails_and_leaves_stock_unchanged_when_insufficient", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		err := it.RemoveStock(11)

		require.ErrorIs(t, err, item.ErrInsufficientStock)
		assert.Equal(t, 10, it.StockQuantity())
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		err := it.RemoveStock(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 10, it.StockQuantity())
	})
}

func TestItem_Change(t *testing.T) {
	t.Run("replaces_mutable_fields", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		require.NoError(t, it.Change("City JPA", 12000, 7))

		assert.Equal(t, "City JPA", it.Name())
		assert.Equal(t, 12000, it.Price())
		assert.Equal(t, 7, it.StockQuantity())
	})

	t.Run("rejects_invalid_replacement", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		require.Error(t, it.Change("", -1, -1))
	})
}

func TestItem_AssignCategory(t *testing.T) {
	t.Run("adds_category_once", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)
		categoryID := kernel.NewUUID()

		require.NoError(t, it.AssignCategory(categoryID))
		require.NoError(t, it.AssignCategory(categoryID))

		require.Len(t, it.CategoryIDs(), 1)
		assert.True(t, categoryID.IsEqual(it.CategoryIDs()[0]))
	})

	t.Run("rejects_invalid_category_id", func(t *testing.T) {
		it := newBookItem(t, 10000, 10)

		require.Error(t, it.AssignCategory(kernel.UUID{}))
	})
}

func TestRestoreItem(t *testing.T) {
	id := kernel.NewUUID()
	categoryID := kernel.NewUUID()

	it, err := item.RestoreItem(id, "Country JPA", 10000, 8, item.NewBook("Kim", "isbn"), []kernel.UUID{categoryID}, 3)

	require.NoError(t, err)
	require.NoError(t, it.Validate())
	assert.Equal(t, 8, it.StockQuantity())
	assert.Equal(t, 3, it.Version())
	require.Len(t, it.CategoryIDs(), 1)
	assert.True(t, categoryID.IsEqual(it.CategoryIDs()[0]))
}

func TestRestoreItem_InvalidVersion(t *testing.T) {
	_, err := item.RestoreItem(kernel.NewUUID(), "Country JPA", 10000, 8, item.NewBook("Kim", "isbn"), nil, 0)
	require.Error(t, err)
}
