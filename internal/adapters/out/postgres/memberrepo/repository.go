package memberrepo

import (
	"context"
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"
	"bookshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMemberRepository implements MemberRepository using GORM.
type GormMemberRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMemberRepository creates a new GORM member repository.
func NewGormMemberRepository(db *gorm.DB, tracker aggregateTracker) *GormMemberRepository {
	return &GormMemberRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new member to the database.
func (r *GormMemberRepository) Add(ctx context.Context, aggregate *member.Member) error {
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

// Update saves an existing member to the database.
func (r *GormMemberRepository) Update(ctx context.Context, aggregate *member.Member) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MemberDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a member by ID.
func (r *GormMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("member", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all members.
func (r *GormMemberRepository) GetAll(ctx context.Context) ([]*member.Member, error) {
	var dtos []MemberDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	members := make([]*member.Member, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}
