package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCalculateTruckPlanningCommandIsNotConstructed = errors.New(
	"CalculateTruckPlanningCommand must be created via NewCalculateTruckPlanningCommand constructor",
)

// CalculateTruckPlanningCommand packs the groups of a lane and ship date
// into trucks of one type. With order ids only the groups of those orders
// are packed and existing trucks are kept; without them the lane is
// replanned from scratch.
//
// Example:
//
//	cmd, err := NewCalculateTruckPlanningCommand(laneID, shipDate, truck.Standard, decimal.Zero, nil)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CalculateTruckPlanningCommand struct {
	laneID    kernel.UUID
	shipDate  time.Time
	truckType truck.Type
	capacity  decimal.Decimal
	orderIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCalculateTruckPlanningCommand resolves the truck capacity; customLDM is
// only used for truck.Custom.
func NewCalculateTruckPlanningCommand(
	laneID kernel.UUID,
	shipDate time.Time,
	truckType truck.Type,
	customLDM decimal.Decimal,
	orderIDs []kernel.UUID,
) (CalculateTruckPlanningCommand, error) {
	var shipDateErr error
	if shipDate.IsZero() {
		shipDateErr = errs.NewValueIsRequiredError("ship date")
	}

	capacity, capacityErr := truck.CapacityFor(truckType, customLDM)
	ids, idsErr := normalizeOrderIDs(orderIDs, false)

	if err := errors.Join(laneID.Validate(), shipDateErr, capacityErr, idsErr); err != nil {
		return CalculateTruckPlanningCommand{}, err
	}

	return CalculateTruckPlanningCommand{
		laneID:    laneID,
		shipDate:  kernel.ShipDate(shipDate),
		truckType: truckType,
		capacity:  capacity,
		orderIDs:  ids,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CalculateTruckPlanningCommand) Validate() error {
	return c.guard.Validate(ErrCalculateTruckPlanningCommandIsNotConstructed)
}

func (c CalculateTruckPlanningCommand) LaneID() kernel.UUID       { return c.laneID }
func (c CalculateTruckPlanningCommand) ShipDate() time.Time       { return c.shipDate }
func (c CalculateTruckPlanningCommand) TruckType() truck.Type     { return c.truckType }
func (c CalculateTruckPlanningCommand) Capacity() decimal.Decimal { return c.capacity }
func (c CalculateTruckPlanningCommand) OrderIDs() []kernel.UUID   { return c.orderIDs }

// IsSubset reports whether only selected orders are packed.
func (c CalculateTruckPlanningCommand) IsSubset() bool {
	return len(c.orderIDs) > 0
}
