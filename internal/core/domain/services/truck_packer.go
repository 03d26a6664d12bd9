package services

import (
	"cmp"
	"fmt"
	"slices"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	packEpsilon         = decimal.RequireFromString("0.001")
	packMinSpare        = decimal.RequireFromString("0.01")
	packShareTolerance  = decimal.RequireFromString("0.1")
	packMinimalQuantity = decimal.RequireFromString("0.1")
)

// PackItem is one unit offered to the packer: a group and the member orders
// that should travel with it.
type PackItem struct {
	GroupID   kernel.UUID
	Reference string
	Orders    []*order.Order
}

// LDM returns the sum of the individual LDM of the item's orders.
func (i PackItem) LDM() decimal.Decimal {
	return lo.Reduce(i.Orders, func(acc decimal.Decimal, o *order.Order, _ int) decimal.Decimal {
		return acc.Add(o.LDM())
	}, decimal.Zero)
}

// PackedTruck is a draft truck with the discrete orders assigned to it.
type PackedTruck struct {
	Orders []*order.Order
	LDM    decimal.Decimal
}

// GroupIDs returns the distinct groups represented on the truck.
func (t PackedTruck) GroupIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(t.Orders))
	for _, o := range t.Orders {
		if o.GroupID() != nil && !lo.ContainsBy(ids, func(id kernel.UUID) bool { return id.IsEqual(*o.GroupID()) }) {
			ids = append(ids, *o.GroupID())
		}
	}
	return ids
}

// SortPackItems orders items by total LDM descending, ties broken by reference.
func SortPackItems(items []PackItem) {
	slices.SortStableFunc(items, func(a, b PackItem) int {
		return cmp.Or(b.LDM().Cmp(a.LDM()), cmp.Compare(a.Reference, b.Reference))
	})
}

// TruckPacker is a domain service that distributes groups of orders over
// trucks of a single capacity.
//
// Packing runs in two phases:
//   - a float phase splits each item's LDM greedily first-fit over the
//     trucks, opening a new truck whenever no truck has spare capacity left
//   - a discrete phase drains each item's orders, in their given order,
//     into the trucks of its float shares until each share is met within
//     a tolerance of 0.1
//
// Orders that do not fit the truck planned for them are placed first-fit
// into any truck with room, or into a new truck. Items keep the order in
// which they are passed; use SortPackItems for a full-lane run.
//
// Example usage:
//
//	packer := services.NewTruckPacker()
//	trucks, err := packer.Pack(items, decimal.RequireFromString("13.6"))
//	if errors.Is(err, errs.ErrPreconditionFailed) {
//	    // an order is longer than the truck
//	    return
//	}
type TruckPacker struct{}

// NewTruckPacker creates a stateless packer.
func NewTruckPacker() TruckPacker {
	return TruckPacker{}
}

type floatShare struct {
	truck int
	ldm   decimal.Decimal
}

// Pack distributes items over trucks of the given capacity.
//
// Parameters:
//   - items: The groups to pack, in packing order
//   - capacity: The LDM capacity of every truck (must be positive)
//
// Returns:
//   - []PackedTruck: Non-empty trucks; no truck's LDM exceeds capacity
//   - error: ValueIsOutOfRange for a non-positive capacity, PreconditionFailed
//     when a single order's LDM exceeds capacity
func (p TruckPacker) Pack(items []PackItem, capacity decimal.Decimal) ([]PackedTruck, error) {
	if capacity.LessThanOrEqual(packMinSpare) {
		return nil, errs.NewValueIsOutOfRangeError("capacity", capacity, packMinSpare, "unbounded")
	}
	for _, item := range items {
		for _, o := range item.Orders {
			if o.LDM().GreaterThan(capacity) {
				return nil, errs.NewPreconditionFailedErrorWithCause(
					"order does not fit on a truck",
					fmt.Errorf("order %s needs %s LDM, truck capacity is %s", o.Reference(), o.LDM(), capacity),
				)
			}
		}
	}

	spares, shares := p.splitShares(items, capacity)
	trucks := p.assignOrders(items, shares, len(spares), capacity)

	return lo.Filter(trucks, func(t PackedTruck, _ int) bool { return len(t.Orders) > 0 }), nil
}

// splitShares is the float phase. The spare capacity of a truck never drops
// below zero because every take is bounded by it.
func (p TruckPacker) splitShares(items []PackItem, capacity decimal.Decimal) ([]decimal.Decimal, [][]floatShare) {
	var spares []decimal.Decimal
	shares := make([][]floatShare, len(items))

	for i, item := range items {
		remaining := item.LDM()
		if !remaining.IsPositive() {
			remaining = packMinimalQuantity
		}

		for remaining.GreaterThan(packEpsilon) {
			idx := slices.IndexFunc(spares, func(spare decimal.Decimal) bool { return spare.GreaterThan(packMinSpare) })
			if idx < 0 {
				spares = append(spares, capacity)
				idx = len(spares) - 1
			}

			take := decimal.Min(remaining, spares[idx])
			spares[idx] = spares[idx].Sub(take)
			remaining = remaining.Sub(take)
			shares[i] = append(shares[i], floatShare{truck: idx, ldm: take})
		}
	}
	return spares, shares
}

// assignOrders is the discrete phase.
func (p TruckPacker) assignOrders(items []PackItem, shares [][]floatShare, truckCount int, capacity decimal.Decimal) []PackedTruck {
	trucks := make([]PackedTruck, truckCount)
	for i := range trucks {
		trucks[i].LDM = decimal.Zero
	}

	var overflow []*order.Order
	for i, item := range items {
		queue := slices.Clone(item.Orders)

		for _, share := range shares[i] {
			loaded := decimal.Zero
			target := share.ldm.Sub(packShareTolerance)

			for len(queue) > 0 && loaded.LessThan(target) {
				next := queue[0]
				if !fits(trucks[share.truck], next, capacity) {
					break
				}
				trucks[share.truck] = load(trucks[share.truck], next)
				loaded = loaded.Add(next.LDM())
				queue = queue[1:]
			}
		}
		overflow = append(overflow, queue...)
	}

	for _, o := range overflow {
		idx := slices.IndexFunc(trucks, func(t PackedTruck) bool { return fits(t, o, capacity) })
		if idx < 0 {
			trucks = append(trucks, PackedTruck{LDM: decimal.Zero})
			idx = len(trucks) - 1
		}
		trucks[idx] = load(trucks[idx], o)
	}
	return trucks
}

func fits(t PackedTruck, o *order.Order, capacity decimal.Decimal) bool {
	return t.LDM.Add(o.LDM()).LessThanOrEqual(capacity)
}

func load(t PackedTruck, o *order.Order) PackedTruck {
	t.Orders = append(t.Orders, o)
	t.LDM = t.LDM.Add(o.LDM())
	return t
}
