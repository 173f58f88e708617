package queries

import (
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var ErrGetAllMembersQueryIsNotConstructed = errors.New(
	"GetAllMembersQuery must be created via NewGetAllMembersQuery constructor",
)

// GetAllMembersQuery retrieves every registered member.
// This is a parameterless query used by the member listing endpoint.
type GetAllMembersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMembersQuery creates a query to retrieve all members.
func NewGetAllMembersQuery() GetAllMembersQuery {
	return GetAllMembersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllMembersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMembersQueryIsNotConstructed)
}

// GetAllMembersQueryResponse represents one member in the listing.
type GetAllMembersQueryResponse struct {
	ID      kernel.UUID
	Name    string
	City    string
	Street  string
	Zipcode string
}
