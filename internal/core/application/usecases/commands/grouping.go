package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/rule"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/samber/lo"
)

// GroupingResult counts the orders handled by a grouping run.
type GroupingResult struct {
	Grouped int
	Skipped int
}

func (r GroupingResult) add(other GroupingResult) GroupingResult {
	return GroupingResult{Grouped: r.Grouped + other.Grouped, Skipped: r.Skipped + other.Skipped}
}

// LaneGroupReference names the groupage group of a lane and ship date. The
// name is for display only; lane groups are found by lane, date and mode.
func LaneGroupReference(laneID kernel.UUID, shipDate time.Time) string {
	return fmt.Sprintf("GRP-%s-%s", shipDate.Format("20060102"), laneID.ShortHex(8))
}

// DirectGroupReference names the direct shipment group of a ship-to and ship date.
func DirectGroupReference(shipToID string, shipDate time.Time) string {
	return fmt.Sprintf("DIRECT-%s-%s", shipDate.Format("20060102"), shipToID)
}

type groupSpec struct {
	reference string
	laneID    *kernel.UUID
	shipToID  string
	shipDate  time.Time
	mode      order.ShippingMode
	byLane    bool
}

func (s groupSpec) find(ctx context.Context, groupRepo ports.GroupRepository, statuses ...group.Status) (*group.Group, error) {
	if s.byLane {
		return groupRepo.FindLaneGroup(ctx, *s.laneID, s.shipDate, s.mode, statuses...)
	}
	return groupRepo.FindByReference(ctx, s.reference, statuses...)
}

// findOrCreateGroup returns the group matching spec in one of the statuses,
// creating an OPEN one when there is none.
func findOrCreateGroup(ctx context.Context, uow UoW, spec groupSpec, statuses ...group.Status) (*group.Group, error) {
	groupRepo := uow.GroupRepository()

	g, err := spec.find(ctx, groupRepo, statuses...)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	g, err = group.NewGroup(kernel.NewUUID(), spec.reference, spec.laneID, spec.shipToID, spec.shipDate, spec.mode)
	if err != nil {
		return nil, err
	}
	if err = groupRepo.Add(ctx, g); err != nil {
		return nil, err
	}

	uow.RecordEvent(event.New(event.EntityGroup, g.ID(), event.Created, map[string]any{
		"reference": g.Reference(),
		"mode":      g.Mode().String(),
		"shipDate":  g.ShipDate().Format(kernel.ShipDateLayout),
	}))
	return g, nil
}

// attachOrders moves orders into g. Orders leaving another group are
// tracked so that their old group gets recomputed.
func attachOrders(ctx context.Context, uow UoW, g *group.Group, orders []*order.Order, touched *links) error {
	if err := g.AcceptsMembers(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	for _, o := range orders {
		touched.track(o)
		if err := o.AssignToGroup(g.ID()); err != nil {
			return fmt.Errorf("order %s: %w", o.Reference(), err)
		}
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}
	touched.addGroup(g.ID())

	uow.RecordEvent(event.New(event.EntityGroup, g.ID(), event.OrdersAdded, map[string]any{
		"orders": referencesOf(orders),
	}))
	return nil
}

// groupGroupage attaches the CALCULATED groupage orders of one ship date to
// the OPEN group of their lane. Orders without a lane are skipped.
func groupGroupage(ctx context.Context, uow UoW, rules *rule.Set, shipDate time.Time, logger *slog.Logger) (GroupingResult, error) {
	orders, err := uow.OrderRepository().FindCalculatedGroupage(ctx, shipDate)
	if err != nil {
		return GroupingResult{}, err
	}

	var result GroupingResult
	buckets := make(map[string][]*order.Order)
	for _, o := range orders {
		lane, ok := rules.LaneFor(o.Country())
		if !ok {
			logger.Warn("no lane for calculated groupage order",
				"orderId", o.ID().String(),
				"reference", o.Reference(),
				"country", o.Country(),
			)
			result.Skipped++
			continue
		}
		buckets[lane.ID.String()] = append(buckets[lane.ID.String()], o)
	}

	var touched links
	for _, lane := range rules.Lanes() {
		members, ok := buckets[lane.ID.String()]
		if !ok {
			continue
		}

		if err = uow.TruckRepository().LockLaneDate(ctx, lane.ID, shipDate); err != nil {
			return GroupingResult{}, err
		}

		g, err := findOrCreateGroup(ctx, uow, groupSpec{
			reference: LaneGroupReference(lane.ID, shipDate),
			laneID:    &lane.ID,
			shipDate:  shipDate,
			mode:      order.Groupage,
			byLane:    true,
		}, group.Open)
		if err != nil {
			return GroupingResult{}, err
		}

		if err = attachOrders(ctx, uow, g, members, &touched); err != nil {
			return GroupingResult{}, err
		}
		result.Grouped += len(members)
	}

	if err = touched.refresh(ctx, uow); err != nil {
		return GroupingResult{}, err
	}
	return result, nil
}

// groupByConsolidationKey attaches CALCULATED orders to the OPEN group named
// after their consolidation key.
func groupByConsolidationKey(ctx context.Context, uow UoW, rules *rule.Set, orders []*order.Order) (GroupingResult, error) {
	var result GroupingResult
	var touched links

	calculated := lo.Filter(orders, func(o *order.Order, _ int) bool { return o.Status() == order.Calculated })
	result.Skipped = len(orders) - len(calculated)

	keys := lo.Uniq(lo.Map(calculated, func(o *order.Order, _ int) string { return o.ConsolidationKey() }))
	buckets := lo.GroupBy(calculated, func(o *order.Order) string { return o.ConsolidationKey() })

	for _, key := range keys {
		members := buckets[key]
		first := members[0]
		if key == "" {
			key = services.ConsolidationKeyFor(first)
		}

		var laneID *kernel.UUID
		if lane, ok := rules.LaneFor(first.Country()); ok {
			laneID = &lane.ID
		}

		g, err := findOrCreateGroup(ctx, uow, groupSpec{
			reference: key,
			laneID:    laneID,
			shipToID:  first.ShipToID(),
			shipDate:  first.ShipDate(),
			mode:      first.EffectiveMode(),
		}, group.Open)
		if err != nil {
			return GroupingResult{}, err
		}

		if err = attachOrders(ctx, uow, g, members, &touched); err != nil {
			return GroupingResult{}, err
		}
		result.Grouped += len(members)
	}

	if err := touched.refresh(ctx, uow); err != nil {
		return GroupingResult{}, err
	}
	return result, nil
}
