package grouprepo

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormGroupRepository implements GroupRepository using GORM. Reads take a
// FOR UPDATE lock; outside a transaction the lock ends with the statement.
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a group repository on db or an open transaction.
func NewGormGroupRepository(db *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: db}
}

func (r *GormGroupRepository) Add(ctx context.Context, aggregate *group.Group) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormGroupRepository) Update(ctx context.Context, aggregate *group.Group) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&GroupDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("group", aggregate.ID().String())
	}
	return nil
}

func (r *GormGroupRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&GroupDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("group", id.String())
	}
	return nil
}

func (r *GormGroupRepository) Get(ctx context.Context, id kernel.UUID) (*group.Group, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GroupDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("group", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormGroupRepository) FindByReference(ctx context.Context, reference string, statuses ...group.Status) (*group.Group, error) {
	query := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("reference = ?", reference)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", lo.Map(statuses, func(s group.Status, _ int) int { return int(s) }))
	}

	var dto GroupDTO
	if err := query.Order("created_at DESC").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("group", reference)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindLaneGroup looks the group up by its columns, never by reference, so
// lanes whose references collide still get a group each.
func (r *GormGroupRepository) FindLaneGroup(
	ctx context.Context,
	laneID kernel.UUID,
	shipDate time.Time,
	mode order.ShippingMode,
	statuses ...group.Status,
) (*group.Group, error) {
	if err := laneID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("lane_id = ? AND ship_date = ? AND mode = ?", laneID.Bytes(), kernel.ShipDate(shipDate), int(mode))
	if len(statuses) > 0 {
		query = query.Where("status IN ?", lo.Map(statuses, func(s group.Status, _ int) int { return int(s) }))
	}

	var dto GroupDTO
	if err := query.Order("created_at DESC").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("group", laneID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormGroupRepository) FindByLaneAndDate(ctx context.Context, laneID kernel.UUID, shipDate time.Time) ([]*group.Group, error) {
	if err := laneID.Validate(); err != nil {
		return nil, err
	}

	var dtos []GroupDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("lane_id = ? AND ship_date = ? AND status <> ?", laneID.Bytes(), kernel.ShipDate(shipDate), int(group.Cancelled)).
		Order("reference").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	groups := make([]*group.Group, 0, len(dtos))
	for _, dto := range dtos {
		g, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}
