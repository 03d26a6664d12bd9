package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
)

// TruckRepository defines the persistence contract for trucks.
type TruckRepository interface {
	Add(ctx context.Context, aggregate *truck.Truck) error
	Update(ctx context.Context, aggregate *truck.Truck) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// FindByLaneAndDate returns the trucks of a lane and ship date by number.
	FindByLaneAndDate(ctx context.Context, laneID kernel.UUID, shipDate time.Time) ([]*truck.Truck, error)

	// LockLaneDate blocks until no other transaction plans the same lane and
	// ship date. The lock is released when the transaction ends.
	LockLaneDate(ctx context.Context, laneID kernel.UUID, shipDate time.Time) error
}
