package queries

import (
	"context"

	"bookshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllMembersQueryHandler retrieves all members from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetAllMembersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMembersQueryHandler creates a handler for member listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllMembersQueryHandler(db *gorm.DB) GetAllMembersQueryHandler {
	return GetAllMembersQueryHandler{db: db}
}

// Handle executes the query to retrieve all members, sorted by name.
func (h GetAllMembersQueryHandler) Handle(
	ctx context.Context,
	query GetAllMembersQuery,
) ([]GetAllMembersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]GetAllMembersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			city,
			street,
			zipcode
		FROM members
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m GetAllMembersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&m.Name,
			&m.City,
			&m.Street,
			&m.Zipcode,
		)
		if err != nil {
			return nil, err
		}

		memberID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		m.ID = memberID

		members = append(members, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
