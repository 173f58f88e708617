package kernel_test

import (
	"testing"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates_valid_address", func(t *testing.T) {
		addr, err := kernel.NewAddress("Seoul", "Gangga", "123-123")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "Seoul", addr.City())
		assert.Equal(t, "Gangga", addr.Street())
		assert.Equal(t, "123-123", addr.Zipcode())
	})

	t.Run("rejects_empty_fields", func(t *testing.T) {
		tests := []struct {
			name                  string
			city, street, zipcode string
		}{
			{"empty_city", "", "Gangga", "123-123"},
			{"empty_street", "Seoul", "", "123-123"},
			{"empty_zipcode", "Seoul", "Gangga", ""},
			{"all_empty", "", "", ""},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewAddress(tc.city, tc.street, tc.zipcode)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	t.Run("equal_by_value", func(t *testing.T) {
		addr1, _ := kernel.NewAddress("Seoul", "Gangga", "123-123")
		addr2, _ := kernel.NewAddress("Seoul", "Gangga", "123-123")

		equal, err := addr1.IsEqual(addr2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different_values_are_not_equal", func(t *testing.T) {
		addr1, _ := kernel.NewAddress("Seoul", "Gangga", "123-123")
		addr2, _ := kernel.NewAddress("Busan", "Gangga", "123-123")

		equal, err := addr1.IsEqual(addr2)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("comparison_with_zero_value_fails", func(t *testing.T) {
		addr, _ := kernel.NewAddress("Seoul", "Gangga", "123-123")
		var zero kernel.Address

		_, err := addr.IsEqual(zero)

		require.Error(t, err)
	})
}

func TestAddress_String(t *testing.T) {
	addr, _ := kernel.NewAddress("Seoul", "Gangga", "123-123")
	assert.Equal(t, "Seoul, Gangga (123-123)", addr.String())
}
