// Package categoryrepo provides data transfer objects and mapping
// functions for category persistence.
package categoryrepo

import (
	"bookshop/internal/core/domain/model/category"
	"bookshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting categories.
type CategoryDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// fromDomain converts a category domain entity to its database representation.
func fromDomain(c *category.Category) CategoryDTO {
	return CategoryDTO{
		ID:   c.ID().Bytes(),
		Name: c.Name(),
	}
}

// toDomain converts a database DTO to a category domain entity using
// RestoreCategory.
func toDomain(dto CategoryDTO) (*category.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return category.RestoreCategory(id, dto.Name)
}
