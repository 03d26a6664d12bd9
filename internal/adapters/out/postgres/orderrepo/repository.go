package orderrepo

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order. A duplicate reference is a precondition failure.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewPreconditionFailedErrorWithCause("order reference already exists", err)
		}
		return err
	}
	return nil
}

// Update saves the planning state of an existing order. Zero values are
// written too, so links and hold reasons can be cleared.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves orders in the order of ids.
func (r *GormOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	if len(ids) == 0 {
		return []*order.Order{}, nil
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
	}

	raw := lo.Map(ids, func(id kernel.UUID, _ int) uuid.UUID { return id.Bytes() })
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	byID := lo.KeyBy(dtos, func(dto OrderDTO) uuid.UUID { return dto.ID })
	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	if len(statuses) == 0 {
		return []*order.Order{}, nil
	}
	codes := lo.Map(statuses, func(s order.Status, _ int) int { return int(s) })
	return r.find(ctx, r.db.Where("status IN ?", codes).Order("ship_date, reference"))
}

func (r *GormOrderRepository) FindCalculatedGroupage(ctx context.Context, shipDate time.Time) ([]*order.Order, error) {
	return r.find(ctx, r.db.
		Where("status = ? AND effective_mode = ? AND ship_date = ?", int(order.Calculated), int(order.Groupage), kernel.ShipDate(shipDate)).
		Order("reference"))
}

func (r *GormOrderRepository) FindCalculatedShipDates(ctx context.Context) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ? AND effective_mode = ?", int(order.Calculated), int(order.Groupage)).
		Distinct("ship_date").
		Order("ship_date").
		Pluck("ship_date", &dates).Error
	if err != nil {
		return nil, err
	}
	return lo.Map(dates, func(d time.Time, _ int) time.Time { return kernel.ShipDate(d) }), nil
}

func (r *GormOrderRepository) FindCalculatedByConsolidationKeys(ctx context.Context, keys []string) ([]*order.Order, error) {
	if len(keys) == 0 {
		return []*order.Order{}, nil
	}
	return r.find(ctx, r.db.
		Where("status = ? AND consolidation_key IN ?", int(order.Calculated), keys).
		Order("reference"))
}

func (r *GormOrderRepository) FindByGroup(ctx context.Context, groupID kernel.UUID) ([]*order.Order, error) {
	if err := groupID.Validate(); err != nil {
		return nil, err
	}
	return r.find(ctx, r.db.Where("group_id = ?", groupID.Bytes()).Order("reference"))
}

func (r *GormOrderRepository) FindByTruck(ctx context.Context, truckID kernel.UUID) ([]*order.Order, error) {
	if err := truckID.Validate(); err != nil {
		return nil, err
	}
	return r.find(ctx, r.db.Where("truck_id = ?", truckID.Bytes()).Order("reference"))
}

func (r *GormOrderRepository) find(ctx context.Context, query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
