// Package ports defines the persistence contracts of the freight planner.
// The domain and application layers depend on these interfaces only; the
// postgres adapters implement them.
package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; they only change status.
type OrderRepository interface {
	// Add persists a new order. The reference must be unique.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the planning state of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany retrieves the given orders in the order of ids.
	// A missing identifier is reported as ObjectNotFound.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// FindByStatus returns orders in any of the statuses, oldest ship date first.
	FindByStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)

	// FindCalculatedGroupage returns CALCULATED orders whose effective mode is
	// GROUPAGE and that ship on shipDate.
	FindCalculatedGroupage(ctx context.Context, shipDate time.Time) ([]*order.Order, error)

	// FindCalculatedShipDates returns the distinct ship dates of CALCULATED
	// groupage orders, ascending.
	FindCalculatedShipDates(ctx context.Context) ([]time.Time, error)

	// FindCalculatedByConsolidationKeys returns CALCULATED orders that carry
	// one of the keys.
	FindCalculatedByConsolidationKeys(ctx context.Context, keys []string) ([]*order.Order, error)

	// FindByGroup returns the members of a group, by reference.
	FindByGroup(ctx context.Context, groupID kernel.UUID) ([]*order.Order, error)

	// FindByTruck returns the orders loaded on a truck, by reference.
	FindByTruck(ctx context.Context, truckID kernel.UUID) ([]*order.Order, error)
}
