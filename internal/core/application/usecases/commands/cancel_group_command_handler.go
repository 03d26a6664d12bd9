package commands

import (
	"context"
	"log/slog"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/services"
)

// CancelGroupResult reports the members reopened by a cancellation and how
// many of them were classified again.
type CancelGroupResult struct {
	Reopened     int
	Reclassified int
}

// CancelGroupCommandHandler cancels a group, reopens its members and then
// classifies each of them again.
//
// The cancellation commits first. Classification runs afterwards, one
// transaction per order; a member that fails to classify stays OPEN and is
// picked up by the next classification run.
type CancelGroupCommandHandler struct {
	uowFactory UoWFactory
	validator  services.GroupageValidator
	logger     *slog.Logger
}

// NewCancelGroupCommandHandler creates a handler for group cancellation.
// The validator is used to reclassify the orders the group releases.
func NewCancelGroupCommandHandler(
	uowFactory UoWFactory,
	validator services.GroupageValidator,
	logger *slog.Logger,
) CancelGroupCommandHandler {
	return CancelGroupCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		logger:     logger.With("component", "CancelGroup"),
	}
}

// Handle cancels the group and reopens its members in one transaction, then
// reclassifies each reopened order in a transaction of its own. A failed
// reclassification is logged and leaves that order OPEN.
func (h CancelGroupCommandHandler) Handle(ctx context.Context, cmd CancelGroupCommand) (CancelGroupResult, error) {
	if err := cmd.Validate(); err != nil {
		return CancelGroupResult{}, err
	}

	reopened, err := h.cancel(ctx, cmd.GroupID())
	if err != nil {
		return CancelGroupResult{}, err
	}

	result := CancelGroupResult{Reopened: len(reopened)}
	for _, id := range reopened {
		if err = h.reclassify(ctx, id); err != nil {
			h.logger.Warn("reopened order was not classified",
				"groupId", cmd.GroupID().String(),
				"orderId", id.String(),
				"error", err,
			)
			continue
		}
		result.Reclassified++
	}
	return result, nil
}

func (h CancelGroupCommandHandler) cancel(ctx context.Context, groupID kernel.UUID) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	groupRepo := uow.GroupRepository()
	g, err := groupRepo.Get(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err = g.Cancel(); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	members, err := orderRepo.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	var touched links
	for _, o := range members {
		if o.TruckID() != nil {
			touched.trucks = append(touched.trucks, *o.TruckID())
		}
		from := o.Status()
		if err = o.Reopen(); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
		uow.RecordEvent(statusChanged(o, from, event.GroupCancelled))
	}

	// The cancelled group stays as a record with zero totals.
	if err = g.Recalculate(nil); err != nil {
		return nil, err
	}
	if err = groupRepo.Update(ctx, g); err != nil {
		return nil, err
	}
	if err = touched.refresh(ctx, uow); err != nil {
		return nil, err
	}

	uow.RecordEvent(event.New(event.EntityGroup, g.ID(), event.GroupCancelled, map[string]any{
		"reference": g.Reference(),
		"orders":    referencesOf(members),
	}))

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return idsOf(members), nil
}

func (h CancelGroupCommandHandler) reclassify(ctx context.Context, orderID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rules, err := uow.RuleRepository().Snapshot(ctx)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if o.Status() != order.Open {
		return nil
	}

	if err = classifyOrder(uow, services.NewClassifier(rules, h.validator), o); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
