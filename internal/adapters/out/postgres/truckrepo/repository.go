package truckrepo

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTruckRepository implements TruckRepository using GORM.
type GormTruckRepository struct {
	db *gorm.DB
}

// NewGormTruckRepository creates a truck repository on db or an open transaction.
func NewGormTruckRepository(db *gorm.DB) *GormTruckRepository {
	return &GormTruckRepository{db: db}
}

func (r *GormTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTruckRepository) Update(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TruckDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("truck", aggregate.ID().String())
	}
	return nil
}

func (r *GormTruckRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TruckDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("truck", id.String())
	}
	return nil
}

func (r *GormTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TruckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truck", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormTruckRepository) FindByLaneAndDate(ctx context.Context, laneID kernel.UUID, shipDate time.Time) ([]*truck.Truck, error) {
	if err := laneID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TruckDTO
	err := r.db.WithContext(ctx).
		Where("lane_id = ? AND ship_date = ?", laneID.Bytes(), kernel.ShipDate(shipDate)).
		Order("number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	trucks := make([]*truck.Truck, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}
	return trucks, nil
}

// LockLaneDate takes a transaction-scoped advisory lock keyed by lane and
// ship date. It must run inside a transaction.
func (r *GormTruckRepository) LockLaneDate(ctx context.Context, laneID kernel.UUID, shipDate time.Time) error {
	if err := laneID.Validate(); err != nil {
		return err
	}

	key := laneID.String() + "|" + kernel.ShipDate(shipDate).Format(kernel.ShipDateLayout)
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}
