package queries

import (
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var ErrGetAllItemsQueryIsNotConstructed = errors.New(
	"GetAllItemsQuery must be created via NewGetAllItemsQuery constructor",
)

// GetAllItemsQuery retrieves every catalog item.
// This is a parameterless query used by the catalog listing endpoint.
type GetAllItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllItemsQuery creates a query to retrieve all catalog items.
func NewGetAllItemsQuery() GetAllItemsQuery {
	return GetAllItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllItemsQueryIsNotConstructed)
}

// GetAllItemsQueryResponse represents one catalog item in the listing.
// Author and ISBN are empty for non-book kinds.
type GetAllItemsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Price         int
	StockQuantity int
	Kind          string
	Author        string
	ISBN          string
}
