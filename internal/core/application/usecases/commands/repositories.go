// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"bookshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MemberRepoFactory provides access to the member repository within a transaction.
	MemberRepoFactory interface {
		MemberRepository() ports.MemberRepository
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// CategoryRepoFactory provides access to the category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MemberUoW manages transactions for member-only operations.
	MemberUoW interface {
		TxManager
		MemberRepoFactory
	}

	// MemberUoWFactory creates new member unit of work instances.
	MemberUoWFactory interface {
		Create() MemberUoW
	}

	// ItemUoW manages transactions for item-only operations.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	// ItemUoWFactory creates new item unit of work instances.
	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// CategoryUoW manages transactions for category-only operations.
	CategoryUoW interface {
		TxManager
		CategoryRepoFactory
	}

	// CategoryUoWFactory creates new category unit of work instances.
	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	// CatalogUoW manages transactions spanning items and categories.
	// Used when an item's category membership changes.
	CatalogUoW interface {
		TxManager
		ItemRepoFactory
		CategoryRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW manages the order placement transaction, which touches
	// the member, the ordered item's stock, and the new order aggregate.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   memberRepo := uow.MemberRepository()
	//   itemRepo := uow.ItemRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		MemberRepoFactory
		ItemRepoFactory
		OrderRepoFactory
	}

	// PlaceOrderUoWFactory creates new order placement unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// CancelOrderUoW manages the order cancellation transaction, which
	// updates the order aggregate and restores item stock.
	CancelOrderUoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
	}

	// CancelOrderUoWFactory creates new order cancellation unit of work instances.
	CancelOrderUoWFactory interface {
		Create() CancelOrderUoW
	}
)
