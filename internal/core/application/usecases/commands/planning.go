package commands

import (
	"context"
	"slices"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

	"github.com/samber/lo"
)

var ErrOrderIDsAreRequired = errs.NewValueIsRequiredError("order ids")

// normalizeOrderIDs validates the identifiers and drops duplicates, keeping
// the first occurrence.
func normalizeOrderIDs(ids []kernel.UUID, required bool) ([]kernel.UUID, error) {
	if required && len(ids) == 0 {
		return nil, ErrOrderIDsAreRequired
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
	}
	return lo.UniqBy(ids, kernel.UUID.String), nil
}

// uniqueIDs deduplicates and sorts identifiers so that rows are always
// locked in the same order.
func uniqueIDs(ids []kernel.UUID) []kernel.UUID {
	unique := lo.UniqBy(ids, kernel.UUID.String)
	slices.SortFunc(unique, kernel.CompareUUIDs)
	return unique
}

func statusChanged(o *order.Order, from order.Status, reason event.Type) event.Event {
	return event.New(event.EntityOrder, o.ID(), event.StatusChange, map[string]any{
		"from":   from.String(),
		"to":     o.Status().String(),
		"reason": string(reason),
	})
}

// links collects the groups and trucks whose members changed during an
// operation. Their aggregates are recomputed once at the end.
type links struct {
	groups []kernel.UUID
	trucks []kernel.UUID
}

// track remembers the current group and truck of o.
func (l *links) track(o *order.Order) {
	if o.GroupID() != nil {
		l.groups = append(l.groups, *o.GroupID())
	}
	if o.TruckID() != nil {
		l.trucks = append(l.trucks, *o.TruckID())
	}
}

func (l *links) addGroup(id kernel.UUID) {
	l.groups = append(l.groups, id)
}

// refresh recomputes every tracked truck and group. Groups left without
// members are deleted; empty trucks are kept.
func (l *links) refresh(ctx context.Context, uow UoW) error {
	for _, id := range uniqueIDs(l.trucks) {
		if err := refreshTruck(ctx, uow, id); err != nil {
			return err
		}
	}
	for _, id := range uniqueIDs(l.groups) {
		if err := refreshGroup(ctx, uow, id); err != nil {
			return err
		}
	}
	return nil
}

func refreshGroup(ctx context.Context, uow UoW, groupID kernel.UUID) error {
	groupRepo := uow.GroupRepository()

	g, err := groupRepo.Get(ctx, groupID)
	if err != nil {
		return err
	}

	members, err := uow.OrderRepository().FindByGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if len(members) == 0 {
		if err = groupRepo.Delete(ctx, groupID); err != nil {
			return err
		}
		uow.RecordEvent(event.New(event.EntityGroup, groupID, event.GroupDeleted, map[string]any{
			"reference": g.Reference(),
		}))
		return nil
	}

	if err = g.Recalculate(members); err != nil {
		return err
	}
	return groupRepo.Update(ctx, g)
}

func refreshTruck(ctx context.Context, uow UoW, truckID kernel.UUID) error {
	truckRepo := uow.TruckRepository()

	t, err := truckRepo.Get(ctx, truckID)
	if err != nil {
		return err
	}

	loaded, err := uow.OrderRepository().FindByTruck(ctx, truckID)
	if err != nil {
		return err
	}

	if err = t.Recalculate(loaded); err != nil {
		return err
	}
	return truckRepo.Update(ctx, t)
}

func referencesOf(orders []*order.Order) []string {
	return lo.Map(orders, func(o *order.Order, _ int) string { return o.Reference() })
}

func idsOf(orders []*order.Order) []kernel.UUID {
	return lo.Map(orders, func(o *order.Order, _ int) kernel.UUID { return o.ID() })
}
