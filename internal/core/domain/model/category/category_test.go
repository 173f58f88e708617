package category_test

import (
	"testing"

	"bookshop/internal/core/domain/model/category"
	"bookshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates_valid_category", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := category.NewCategory(id, "Novels")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, id.IsEqual(c.ID()))
		assert.Equal(t, "Novels", c.Name())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := category.NewCategory(kernel.NewUUID(), "")
		require.Error(t, err)
	})

	t.Run("rejects_zero_uuid", func(t *testing.T) {
		_, err := category.NewCategory(kernel.UUID{}, "Novels")
		require.Error(t, err)
	})
}

func TestCategory_Rename(t *testing.T) {
	c, err := category.NewCategory(kernel.NewUUID(), "Novels")
	require.NoError(t, err)

	require.NoError(t, c.Rename("Fiction"))
	assert.Equal(t, "Fiction", c.Name())

	require.Error(t, c.Rename(""))
	assert.Equal(t, "Fiction", c.Name())
}

func TestCategory_Validate(t *testing.T) {
	var c *category.Category
	require.ErrorIs(t, c.Validate(), category.ErrCategoryIsNotConstructed)
	require.ErrorIs(t, (&category.Category{}).Validate(), category.ErrCategoryIsNotConstructed)
}
