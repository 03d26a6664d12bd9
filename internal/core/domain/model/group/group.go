package group

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

// ErrGroupIsNotConstructed is returned when a Group was not created through NewGroup or RestoreGroup.
var ErrGroupIsNotConstructed = errors.New("Group must be created via NewGroup constructor")

// Totals are the aggregates of a group's current members.
type Totals struct {
	Volume  decimal.Decimal
	Weight  decimal.Decimal
	Pallets int64
	LDM     decimal.Decimal
	Orders  int
}

// TotalsOf sums the individual metrics of the given orders.
func TotalsOf(members []*order.Order) Totals {
	t := Totals{Volume: decimal.Zero, Weight: decimal.Zero, LDM: decimal.Zero}
	for _, o := range members {
		t.Volume = t.Volume.Add(o.Volume())
		t.Weight = t.Weight.Add(o.Weight())
		t.Pallets += o.Pallets()
		t.LDM = t.LDM.Add(o.LDM())
		t.Orders++
	}
	return t
}

// Group is a set of orders shipped together: a lane groupage bucket, a
// consolidation-key group, a direct shipment or a remix.
//
// Totals are never adjusted incrementally. Every membership change is
// followed by Recalculate over the full member list, and a group that ends
// up empty is deleted by the caller.
type Group struct {
	id        kernel.UUID
	reference string
	laneID    *kernel.UUID
	shipToID  string
	shipDate  time.Time
	mode      order.ShippingMode
	status    Status
	totals    Totals
	guard     guard.ConstructorGuard
}

// NewGroup creates an empty OPEN group. laneID is nil for groups that are
// not bound to a lane, such as direct shipments.
func NewGroup(
	id kernel.UUID,
	reference string,
	laneID *kernel.UUID,
	shipToID string,
	shipDate time.Time,
	mode order.ShippingMode,
) (*Group, error) {
	g := &Group{
		status: Open,
		totals: TotalsOf(nil),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		g.setID(id),
		g.setReference(reference),
		g.setShipDate(shipDate),
		mode.Validate(),
	); err != nil {
		return nil, err
	}

	g.laneID = laneID
	g.shipToID = shipToID
	g.mode = mode
	return g, nil
}

// RestoreGroup rebuilds a persisted group.
func RestoreGroup(
	id kernel.UUID,
	reference string,
	laneID *kernel.UUID,
	shipToID string,
	shipDate time.Time,
	mode order.ShippingMode,
	status Status,
	totals Totals,
) (*Group, error) {
	g, err := NewGroup(id, reference, laneID, shipToID, shipDate, mode)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	g.status = status
	g.totals = totals
	return g, nil
}

func (g *Group) Validate() error {
	if g == nil {
		return ErrGroupIsNotConstructed
	}
	return g.guard.Validate(ErrGroupIsNotConstructed)
}

func (g *Group) ID() kernel.UUID          { return g.id }
func (g *Group) Reference() string        { return g.reference }
func (g *Group) LaneID() *kernel.UUID     { return g.laneID }
func (g *Group) ShipToID() string         { return g.shipToID }
func (g *Group) ShipDate() time.Time      { return g.shipDate }
func (g *Group) Mode() order.ShippingMode { return g.mode }
func (g *Group) Status() Status           { return g.status }
func (g *Group) Totals() Totals           { return g.totals }
func (g *Group) IsEmpty() bool            { return g.totals.Orders == 0 }

// AcceptsMembers reports whether orders may still be attached or detached.
func (g *Group) AcceptsMembers() error {
	if g.status == Planned || g.status == Cancelled {
		return errs.NewPreconditionFailedErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s group does not accept membership changes", g.status),
		)
	}
	return nil
}

// Recalculate replaces the totals with a full recomputation over members.
// Members that do not point at this group are rejected.
func (g *Group) Recalculate(members []*order.Order) error {
	for _, o := range members {
		if o.GroupID() == nil || !o.GroupID().IsEqual(g.id) {
			return errs.NewValueIsInvalidErrorWithCause(
				"member",
				fmt.Errorf("order %s does not belong to group %s", o.Reference(), g.reference),
			)
		}
	}
	g.totals = TotalsOf(members)
	return nil
}

// MarkTrucked records that the group's orders were packed onto trucks.
func (g *Group) MarkTrucked() error { return g.moveTo(g.status.MarkTrucked) }

// ReleaseFromTrucks returns a TRUCKED group to OPEN after its trucks were discarded.
func (g *Group) ReleaseFromTrucks() error { return g.moveTo(g.status.ReleaseFromTrucks) }

func (g *Group) Plan() error   { return g.moveTo(g.status.Plan) }
func (g *Group) Unplan() error { return g.moveTo(g.status.Unplan) }
func (g *Group) Cancel() error { return g.moveTo(g.status.Cancel) }

func (g *Group) moveTo(transition func() (Status, error)) error {
	next, err := transition()
	if err != nil {
		return err
	}
	g.status = next
	return nil
}

func (g *Group) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *Group) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	g.reference = reference
	return nil
}

func (g *Group) setShipDate(shipDate time.Time) error {
	if shipDate.IsZero() {
		return errs.NewValueIsRequiredError("ship date")
	}
	g.shipDate = kernel.ShipDate(shipDate)
	return nil
}
