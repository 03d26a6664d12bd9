package commands

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/group"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PlanDirectCommandHandler plans direct shipments without trucks. Orders are
// bucketed by ship-to id and ship date; each bucket joins the direct group of
// that pair, which is planned together with its new members.
type PlanDirectCommandHandler struct {
	uowFactory      UoWFactory
	groupageCeiling decimal.Decimal
}

// NewPlanDirectCommandHandler creates a handler for direct shipment planning.
// The validator supplies the LDM ceiling for the effective mode of each ship-to.
func NewPlanDirectCommandHandler(uowFactory UoWFactory, validator services.GroupageValidator) PlanDirectCommandHandler {
	return PlanDirectCommandHandler{
		uowFactory:      uowFactory,
		groupageCeiling: validator.LDMCeiling(),
	}
}

// Handle returns the number of orders planned.
func (h PlanDirectCommandHandler) Handle(ctx context.Context, cmd PlanDirectCommand) (int, error) {
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

	orders, err := uow.OrderRepository().GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return 0, err
	}

	for _, o := range orders {
		if !o.EffectiveMode().IsDirect() {
			return 0, errs.NewPreconditionFailedErrorWithCause(
				"shipping mode is invalid",
				fmt.Errorf("order %s is a %s shipment", o.Reference(), o.EffectiveMode()),
			)
		}
	}

	bucketOf := func(o *order.Order) string {
		return DirectGroupReference(o.ShipToID(), o.ShipDate())
	}
	references := lo.Uniq(lo.Map(orders, func(o *order.Order, _ int) string { return bucketOf(o) }))
	buckets := lo.GroupBy(orders, bucketOf)

	var touched links
	for _, reference := range references {
		if err = h.planBucket(ctx, uow, reference, buckets[reference], &touched); err != nil {
			return 0, err
		}
	}

	if err = touched.refresh(ctx, uow); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}

func (h PlanDirectCommandHandler) planBucket(
	ctx context.Context,
	uow UoW,
	reference string,
	members []*order.Order,
	touched *links,
) error {
	first := members[0]
	modes := lo.Map(members, func(o *order.Order, _ int) order.ShippingMode { return o.EffectiveMode() })
	ldm := lo.Reduce(members, func(acc decimal.Decimal, o *order.Order, _ int) decimal.Decimal {
		return acc.Add(o.LDM())
	}, decimal.Zero)

	g, err := findOrCreateGroup(ctx, uow, groupSpec{
		reference: reference,
		shipToID:  first.ShipToID(),
		shipDate:  first.ShipDate(),
		mode:      services.EffectiveMode(modes, ldm, h.groupageCeiling),
	}, group.Open, group.Planned)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	for _, o := range members {
		if o.GroupID() != nil && !o.GroupID().IsEqual(g.ID()) {
			touched.track(o)
		}
		from := o.Status()
		if err = o.PlanDirect(g.ID()); err != nil {
			return fmt.Errorf("order %s: %w", o.Reference(), err)
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
		uow.RecordEvent(statusChanged(o, from, event.DirectPlanned))
	}
	touched.addGroup(g.ID())

	if g.Status() != group.Planned {
		if err = g.Plan(); err != nil {
			return err
		}
		if err = uow.GroupRepository().Update(ctx, g); err != nil {
			return err
		}
	}

	uow.RecordEvent(event.New(event.EntityGroup, g.ID(), event.DirectPlanned, map[string]any{
		"reference": g.Reference(),
		"shipDate":  g.ShipDate().Format(kernel.ShipDateLayout),
		"orders":    referencesOf(members),
	}))
	return nil
}
