package truck

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrTruckIsNotConstructed is returned when a Truck was not created through NewTruck or RestoreTruck.
var ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

// Load is what a truck carries, recomputed from its assigned orders.
type Load struct {
	Volume  decimal.Decimal
	Weight  decimal.Decimal
	Pallets int64
	LDM     decimal.Decimal
	Orders  int
}

// Truck is a vehicle of a lane on a ship date. Trucks are created OPEN by the
// packer, become PLANNED when the plan is executed and can be unplanned
// again. Only OPEN trucks may be discarded by a repack.
type Truck struct {
	id        kernel.UUID
	number    string
	laneID    kernel.UUID
	shipDate  time.Time
	truckType Type
	capacity  decimal.Decimal
	status    Status
	load      Load
	guard     guard.ConstructorGuard
}

// NewTruck creates an empty OPEN truck. The number is derived from the ship
// date and the identifier, e.g. TRK-20260314-550E8400.
func NewTruck(id kernel.UUID, laneID kernel.UUID, shipDate time.Time, truckType Type, capacity decimal.Decimal) (*Truck, error) {
	t := &Truck{
		status:    Open,
		truckType: truckType,
		load:      Load{Volume: decimal.Zero, Weight: decimal.Zero, LDM: decimal.Zero},
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		laneID.Validate(),
		t.setShipDate(shipDate),
		t.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	t.laneID = laneID
	t.number = fmt.Sprintf("TRK-%s-%s", t.shipDate.Format("20060102"), id.ShortHex(8))
	return t, nil
}

// RestoreTruck rebuilds a persisted truck.
func RestoreTruck(
	id kernel.UUID,
	number string,
	laneID kernel.UUID,
	shipDate time.Time,
	truckType Type,
	capacity decimal.Decimal,
	status Status,
	load Load,
) (*Truck, error) {
	t, err := NewTruck(id, laneID, shipDate, truckType, capacity)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if number != "" {
		t.number = number
	}
	t.status = status
	t.load = load
	return t, nil
}

func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

func (t *Truck) ID() kernel.UUID           { return t.id }
func (t *Truck) Number() string            { return t.number }
func (t *Truck) LaneID() kernel.UUID       { return t.laneID }
func (t *Truck) ShipDate() time.Time       { return t.shipDate }
func (t *Truck) Type() Type                { return t.truckType }
func (t *Truck) Capacity() decimal.Decimal { return t.capacity }
func (t *Truck) Status() Status            { return t.status }
func (t *Truck) Load() Load                { return t.load }
func (t *Truck) IsPlanned() bool           { return t.status == Planned }
func (t *Truck) IsEmpty() bool             { return t.load.Orders == 0 }

// Recalculate replaces the load with the sum over the assigned orders.
// A result above capacity is rejected.
func (t *Truck) Recalculate(assigned []*order.Order) error {
	load := Load{Volume: decimal.Zero, Weight: decimal.Zero, LDM: decimal.Zero}
	for _, o := range assigned {
		if o.TruckID() == nil || !o.TruckID().IsEqual(t.id) {
			return errs.NewValueIsInvalidErrorWithCause(
				"order",
				fmt.Errorf("order %s is not loaded on truck %s", o.Reference(), t.number),
			)
		}
		load.Volume = load.Volume.Add(o.Volume())
		load.Weight = load.Weight.Add(o.Weight())
		load.Pallets += o.Pallets()
		load.LDM = load.LDM.Add(o.LDM())
		load.Orders++
	}

	if load.LDM.GreaterThan(t.capacity) {
		return errs.NewValueIsOutOfRangeError("truck load", load.LDM.String(), "0", t.capacity.String())
	}
	t.load = load
	return nil
}

func (t *Truck) Plan() error   { return t.moveTo(t.status.Plan) }
func (t *Truck) Unplan() error { return t.moveTo(t.status.Unplan) }

func (t *Truck) moveTo(transition func() (Status, error)) error {
	next, err := transition()
	if err != nil {
		return err
	}
	t.status = next
	return nil
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setShipDate(shipDate time.Time) error {
	if shipDate.IsZero() {
		return errs.NewValueIsRequiredError("ship date")
	}
	t.shipDate = kernel.ShipDate(shipDate)
	return nil
}

func (t *Truck) setCapacity(capacity decimal.Decimal) error {
	if !capacity.IsPositive() {
		return errs.NewValueIsOutOfRangeError("capacity", capacity.String(), "0.01", "unbounded")
	}
	t.capacity = capacity
	return nil
}
