package commands

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/samber/lo"
)

// CalculateTruckPlanningCommandHandler packs groups into trucks.
//
// The lane and ship date are locked for the whole run, so two planners never
// pack the same lane concurrently. A failing run rolls back completely and
// leaves trucks committed by earlier runs untouched.
type CalculateTruckPlanningCommandHandler struct {
	uowFactory UoWFactory
	packer     services.TruckPacker
}

// NewCalculateTruckPlanningCommandHandler creates a handler for truck packing.
// Requires a UoWFactory and the TruckPacker that splits groups across trucks.
func NewCalculateTruckPlanningCommandHandler(
	uowFactory UoWFactory,
	packer services.TruckPacker,
) CalculateTruckPlanningCommandHandler {
	return CalculateTruckPlanningCommandHandler{
		uowFactory: uowFactory,
		packer:     packer,
	}
}

// Handle returns the number of trucks created.
func (h CalculateTruckPlanningCommandHandler) Handle(ctx context.Context, cmd CalculateTruckPlanningCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rules, err := uow.RuleRepository().Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	if _, ok := rules.Lane(cmd.LaneID()); !ok {
		return 0, errs.NewObjectNotFoundError("lane", cmd.LaneID())
	}

	if err = uow.TruckRepository().LockLaneDate(ctx, cmd.LaneID(), cmd.ShipDate()); err != nil {
		return 0, err
	}

	var touched links
	var items []services.PackItem
	if cmd.IsSubset() {
		items, err = h.subsetItems(ctx, uow, cmd, &touched)
	} else {
		items, err = h.laneItems(ctx, uow, cmd, &touched)
	}
	if err != nil {
		return 0, err
	}

	packed, err := h.packer.Pack(items, cmd.Capacity())
	if err != nil {
		return 0, err
	}

	for _, draft := range packed {
		if err = h.createTruck(ctx, uow, cmd, draft, &touched); err != nil {
			return 0, err
		}
	}

	if err = touched.refresh(ctx, uow); err != nil {
		return 0, err
	}

	uow.RecordEvent(event.New(event.EntityLane, cmd.LaneID(), event.TrucksCalculated, map[string]any{
		"shipDate":      cmd.ShipDate().Format(kernel.ShipDateLayout),
		"truckType":     cmd.TruckType().String(),
		"capacity":      cmd.Capacity().String(),
		"subset":        cmd.IsSubset(),
		"trucksCreated": len(packed),
	}))

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(packed), nil
}

// laneItems discards the unplanned trucks of the lane and offers every
// non-cancelled, non-planned group as one item, largest first.
func (h CalculateTruckPlanningCommandHandler) laneItems(
	ctx context.Context,
	uow UoW,
	cmd CalculateTruckPlanningCommand,
	touched *links,
) ([]services.PackItem, error) {
	orderRepo := uow.OrderRepository()
	truckRepo := uow.TruckRepository()
	groupRepo := uow.GroupRepository()

	trucks, err := truckRepo.FindByLaneAndDate(ctx, cmd.LaneID(), cmd.ShipDate())
	if err != nil {
		return nil, err
	}

	for _, t := range lo.Reject(trucks, func(t *truck.Truck, _ int) bool { return t.IsPlanned() }) {
		loaded, err := orderRepo.FindByTruck(ctx, t.ID())
		if err != nil {
			return nil, err
		}
		for _, o := range loaded {
			if err = o.UnloadFromTruck(); err != nil {
				return nil, err
			}
			if err = orderRepo.Update(ctx, o); err != nil {
				return nil, err
			}
		}
		if err = truckRepo.Delete(ctx, t.ID()); err != nil {
			return nil, err
		}
	}

	groups, err := groupRepo.FindByLaneAndDate(ctx, cmd.LaneID(), cmd.ShipDate())
	if err != nil {
		return nil, err
	}

	var items []services.PackItem
	for _, g := range groups {
		if g.Status() == group.Planned {
			continue
		}

		members, err := orderRepo.FindByGroup(ctx, g.ID())
		if err != nil {
			return nil, err
		}

		if g.Status() == group.Trucked && !lo.SomeBy(members, func(o *order.Order) bool { return o.TruckID() != nil }) {
			if err = g.ReleaseFromTrucks(); err != nil {
				return nil, err
			}
			if err = groupRepo.Update(ctx, g); err != nil {
				return nil, err
			}
		}
		touched.addGroup(g.ID())

		unloaded := lo.Filter(members, func(o *order.Order, _ int) bool { return o.Status() == order.Grouped })
		if len(unloaded) == 0 {
			continue
		}
		items = append(items, services.PackItem{GroupID: g.ID(), Reference: g.Reference(), Orders: unloaded})
	}

	services.SortPackItems(items)
	return items, nil
}

// subsetItems takes the selected orders off their unplanned trucks and
// offers one item per group, in order of first appearance.
func (h CalculateTruckPlanningCommandHandler) subsetItems(
	ctx context.Context,
	uow UoW,
	cmd CalculateTruckPlanningCommand,
	touched *links,
) ([]services.PackItem, error) {
	orderRepo := uow.OrderRepository()

	selected, err := orderRepo.GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return nil, err
	}

	var items []services.PackItem
	index := make(map[string]int)
	for _, o := range selected {
		if o.GroupID() == nil || (o.Status() != order.Grouped && o.Status() != order.Trucked) {
			return nil, errs.NewPreconditionFailedErrorWithCause(
				"order cannot be packed",
				fmt.Errorf("order %s is %s", o.Reference(), o.Status()),
			)
		}

		g, err := uow.GroupRepository().Get(ctx, *o.GroupID())
		if err != nil {
			return nil, err
		}
		if g.LaneID() == nil || !g.LaneID().IsEqual(cmd.LaneID()) || !g.ShipDate().Equal(cmd.ShipDate()) {
			return nil, errs.NewPreconditionFailedErrorWithCause(
				"order is outside the lane and ship date",
				fmt.Errorf("order %s belongs to group %s", o.Reference(), g.Reference()),
			)
		}

		if o.TruckID() != nil {
			touched.track(o)
			if err = o.UnloadFromTruck(); err != nil {
				return nil, err
			}
			if err = orderRepo.Update(ctx, o); err != nil {
				return nil, err
			}
		}
		touched.addGroup(g.ID())

		key := g.ID().String()
		if i, ok := index[key]; ok {
			items[i].Orders = append(items[i].Orders, o)
			continue
		}
		index[key] = len(items)
		items = append(items, services.PackItem{GroupID: g.ID(), Reference: g.Reference(), Orders: []*order.Order{o}})
	}
	return items, nil
}

func (h CalculateTruckPlanningCommandHandler) createTruck(
	ctx context.Context,
	uow UoW,
	cmd CalculateTruckPlanningCommand,
	draft services.PackedTruck,
	touched *links,
) error {
	t, err := truck.NewTruck(kernel.NewUUID(), cmd.LaneID(), cmd.ShipDate(), cmd.TruckType(), cmd.Capacity())
	if err != nil {
		return err
	}
	if err = uow.TruckRepository().Add(ctx, t); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	for _, o := range draft.Orders {
		if err = o.LoadOnTruck(t.ID()); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = t.Recalculate(draft.Orders); err != nil {
		return err
	}
	if err = uow.TruckRepository().Update(ctx, t); err != nil {
		return err
	}

	groupRepo := uow.GroupRepository()
	for _, groupID := range draft.GroupIDs() {
		g, err := groupRepo.Get(ctx, groupID)
		if err != nil {
			return err
		}
		if err = g.MarkTrucked(); err != nil {
			return err
		}
		if err = groupRepo.Update(ctx, g); err != nil {
			return err
		}
		touched.addGroup(groupID)
	}

	uow.RecordEvent(event.New(event.EntityTruck, t.ID(), event.Created, map[string]any{
		"number": t.Number(),
		"ldm":    t.Load().LDM.String(),
		"orders": referencesOf(draft.Orders),
	}))
	return nil
}
