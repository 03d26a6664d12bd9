package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

// GroupRepository defines the persistence contract for consolidation groups.
// Reads lock the returned rows until the transaction ends, which serializes
// concurrent recomputation of the same group.
type GroupRepository interface {
	Add(ctx context.Context, aggregate *group.Group) error
	Update(ctx context.Context, aggregate *group.Group) error

	// Delete removes a group. Callers delete only groups without members.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*group.Group, error)

	// FindByReference returns the most recent group with the reference in one
	// of the statuses, or ObjectNotFound.
	FindByReference(ctx context.Context, reference string, statuses ...group.Status) (*group.Group, error)

	// FindLaneGroup returns the most recent group of the lane, ship date and
	// mode in one of the statuses, or ObjectNotFound.
	FindLaneGroup(
		ctx context.Context,
		laneID kernel.UUID,
		shipDate time.Time,
		mode order.ShippingMode,
		statuses ...group.Status,
	) (*group.Group, error)

	// FindByLaneAndDate returns the non-cancelled groups of a lane and ship date.
	FindByLaneAndDate(ctx context.Context, laneID kernel.UUID, shipDate time.Time) ([]*group.Group, error)
}
