// Package itemrepo provides data transfer objects and mapping functions
// for catalog item persistence. The item's variant-specific details are
// flattened into the items table with a kind discriminator column;
// category memberships live in the item_categories join table.
package itemrepo

import (
	"fmt"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting item
// aggregates. Author and ISBN are nullable; they are set only for rows
// whose kind is "book".
type ItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Price         int       `gorm:"type:int;not null"`
	StockQuantity int       `gorm:"type:int;not null"`
	Kind          string    `gorm:"type:varchar(32);not null;index"`
	Author        *string   `gorm:"type:varchar(255)"`
	ISBN          *string   `gorm:"type:varchar(64)"`
	Version       int       `gorm:"type:int;not null"`

	Categories []ItemCategoryDTO `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

// ItemCategoryDTO represents one row of the item-to-category join table.
type ItemCategoryDTO struct {
	ItemID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for item-category links.
func (ItemCategoryDTO) TableName() string {
	return "item_categories"
}

// fromDomain converts an item domain aggregate to its database
// representation, including the join rows for its categories.
func fromDomain(it *item.Item) ItemDTO {
	itemID := it.ID().Bytes()

	dto := ItemDTO{
		ID:            itemID,
		Name:          it.Name(),
		Price:         it.Price(),
		StockQuantity: it.StockQuantity(),
		Kind:          string(it.Details().Kind()),
		Version:       it.Version(),
	}

	if book, ok := it.Details().(item.Book); ok {
		author := book.Author()
		isbn := book.ISBN()
		dto.Author = &author
		dto.ISBN = &isbn
	}

	categories := make([]ItemCategoryDTO, 0, len(it.CategoryIDs()))
	for _, categoryID := range it.CategoryIDs() {
		categories = append(categories, ItemCategoryDTO{
			ItemID:     itemID,
			CategoryID: categoryID.Bytes(),
		})
	}
	dto.Categories = categories

	return dto
}

// toDomain converts a database DTO to an item domain aggregate using
// RestoreItem. Fails on unknown kind discriminators.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	details, err := detailsFromRow(dto)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]kernel.UUID, 0, len(dto.Categories))
	for _, link := range dto.Categories {
		categoryID, linkErr := kernel.UUIDFromBytes(link.CategoryID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		categoryIDs = append(categoryIDs, categoryID)
	}

	return item.RestoreItem(id, dto.Name, dto.Price, dto.StockQuantity, details, categoryIDs, dto.Version)
}

func detailsFromRow(dto ItemDTO) (item.Details, error) {
	switch item.Kind(dto.Kind) {
	case item.KindBook:
		var author, isbn string
		if dto.Author != nil {
			author = *dto.Author
		}
		if dto.ISBN != nil {
			isbn = *dto.ISBN
		}
		return item.NewBook(author, isbn), nil
	default:
		return nil, fmt.Errorf("unknown item kind: %q", dto.Kind)
	}
}
