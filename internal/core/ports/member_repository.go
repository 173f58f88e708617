// Package ports defines the outbound interfaces of the application core:
// repositories for each aggregate and the unit of work that scopes them to
// one transaction. Adapters implement these interfaces; the core never
// touches a persistence handle directly.
package ports

import (
	"context"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"
)

// MemberRepository persists and loads Member aggregates.
type MemberRepository interface {
	// Add saves a new member.
	Add(ctx context.Context, aggregate *member.Member) error

	// Update saves an existing member.
	Update(ctx context.Context, aggregate *member.Member) error

	// Get retrieves a member by ID. Returns errs.ObjectNotFoundError when
	// no member with the given ID exists.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)

	// GetAll retrieves all members.
	GetAll(ctx context.Context) ([]*member.Member, error)
}
