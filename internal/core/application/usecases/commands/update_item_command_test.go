package commands_test

import (
	"testing"

	"bookshop/internal/core/application/usecases/commands"
	"bookshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateItemCommand_ValidInput(t *testing.T) {
	itemID := kernel.NewUUID()

	cmd, err := commands.NewUpdateItemCommand(itemID, "Refactoring", 30000, 5)
	require.NoError(t, err)
	assert.Equal(t, itemID, cmd.ItemID())
	assert.Equal(t, "Refactoring", cmd.Name())
	assert.Equal(t, 30000, cmd.Price())
	assert.Equal(t, 5, cmd.StockQuantity())
}

func TestNewUpdateItemCommand_EmptyName(t *testing.T) {
	_, err := commands.NewUpdateItemCommand(kernel.NewUUID(), "", 30000, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemNameIsRequired)
}

func TestNewUpdateItemCommand_NegativePrice(t *testing.T) {
	_, err := commands.NewUpdateItemCommand(kernel.NewUUID(), "Refactoring", -1, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)
}

func TestNewUpdateItemCommand_NegativeStock(t *testing.T) {
	_, err := commands.NewUpdateItemCommand(kernel.NewUUID(), "Refactoring", 30000, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStockIsInvalid)
}

func TestNewUpdateItemCommand_ZeroStockAllowed(t *testing.T) {
	cmd, err := commands.NewUpdateItemCommand(kernel.NewUUID(), "Refactoring", 30000, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.StockQuantity())
}

func TestUpdateItemCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.UpdateItemCommand

	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateItemCommandIsNotConstructed)
}
