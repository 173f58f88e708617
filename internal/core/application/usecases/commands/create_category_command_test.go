package commands_test

import (
	"testing"

	"bookshop/internal/core/application/usecases/commands"
	"bookshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCategoryCommand_ValidInput(t *testing.T) {
	categoryID := kernel.NewUUID()

	cmd, err := commands.NewCreateCategoryCommand(categoryID, "Programming")
	require.NoError(t, err)
	assert.Equal(t, categoryID, cmd.CategoryID())
	assert.Equal(t, "Programming", cmd.Name())
}

func TestNewCreateCategoryCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCategoryNameIsRequired)
}

func TestCreateCategoryCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateCategoryCommand

	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateCategoryCommandIsNotConstructed)
}
