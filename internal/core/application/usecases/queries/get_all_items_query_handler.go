package queries

import (
	"context"
	"database/sql"

	"bookshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllItemsQueryHandler retrieves all catalog items from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetAllItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllItemsQueryHandler creates a handler for catalog listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllItemsQueryHandler(db *gorm.DB) GetAllItemsQueryHandler {
	return GetAllItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve all catalog items, sorted by name.
func (h GetAllItemsQueryHandler) Handle(
	ctx context.Context,
	query GetAllItemsQuery,
) ([]GetAllItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetAllItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			stock_quantity,
			kind,
			author,
			isbn
		FROM items
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it GetAllItemsQueryResponse
		var id uuid.UUID
		var author, isbn sql.NullString

		err = rows.Scan(
			&id,
			&it.Name,
			&it.Price,
			&it.StockQuantity,
			&it.Kind,
			&author,
			&isbn,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		it.ID = itemID
		it.Author = author.String
		it.ISBN = isbn.String

		items = append(items, it)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
