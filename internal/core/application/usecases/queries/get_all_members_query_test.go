package queries_test

import (
	"testing"

	"bookshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllMembersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllMembersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllMembersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllMembersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllMembersQueryIsNotConstructed)
}
