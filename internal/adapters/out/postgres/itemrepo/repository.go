package itemrepo

import (
	"context"
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
//
// Writes are guarded by an optimistic version check: every update bumps
// the version column and only succeeds when the stored version still
// matches the one the aggregate was loaded with. A lost race surfaces as
// errs.VersionIsInvalidError and the enclosing transaction must abort.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new item to the database, including its category links.
func (r *GormItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing item with a compare-and-swap on the version
// column. Category links are replaced wholesale.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// A map is used so zero values like an empty stock still get written.
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"name":           dto.Name,
			"price":          dto.Price,
			"stock_quantity": dto.StockQuantity,
			"kind":           dto.Kind,
			"author":         dto.Author,
			"isbn":           dto.ISBN,
			"version":        dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ItemDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("item", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError(
			"item",
			fmt.Errorf("stored version no longer matches %d", dto.Version),
		)
	}

	if err := r.replaceCategoryLinks(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an item by ID, including its category links.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).Preload("Categories").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all catalog items.
func (r *GormItemRepository) GetAll(ctx context.Context) ([]*item.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Preload("Categories").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*item.Item, 0, len(dtos))
	for _, dto := range dtos {
		it, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, nil
}

func (r *GormItemRepository) replaceCategoryLinks(ctx context.Context, dto ItemDTO) error {
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", dto.ID).
		Delete(&ItemCategoryDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Categories) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Categories).Error
}
