package queries_test

import (
	"testing"

	"bookshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllItemsQuery_Valid(t *testing.T) {
	query := queries.NewGetAllItemsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllItemsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllItemsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllItemsQueryIsNotConstructed)
}
