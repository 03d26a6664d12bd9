package commands

import (
	"context"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/services"
)

// ClassifyOrderCommandHandler classifies one order against a fresh rule
// snapshot and persists the outcome.
//
// Example:
//
//	handler := NewClassifyOrderCommandHandler(uowFactory, services.NewGroupageValidator(ceiling))
//	cmd, _ := NewClassifyOrderCommand(orderID)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
type ClassifyOrderCommandHandler struct {
	uowFactory ClassifyUoWFactory
	validator  services.GroupageValidator
}

// NewClassifyOrderCommandHandler creates a handler for single order classification.
// Requires a ClassifyUoWFactory for the order and rule repositories.
func NewClassifyOrderCommandHandler(
	uowFactory ClassifyUoWFactory,
	validator services.GroupageValidator,
) ClassifyOrderCommandHandler {
	return ClassifyOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
	}
}

// Handle returns the classified order. Rule store errors abort the command
// before the order is touched.
func (h ClassifyOrderCommandHandler) Handle(ctx context.Context, cmd ClassifyOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rules, err := uow.RuleRepository().Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = classifyOrder(uow, services.NewClassifier(rules, h.validator), o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// classifyOrder applies the classification of o and records it. A forced
// booking request is recorded as a status change of its own.
func classifyOrder(recorder EventRecorder, classifier *services.Classifier, o *order.Order) error {
	from := o.Status()
	if err := o.ApplyClassification(classifier.Classify(o)); err != nil {
		return err
	}

	recorder.RecordEvent(event.New(event.EntityOrder, o.ID(), event.Classified, map[string]any{
		"mode":           o.Mode().String(),
		"status":         o.Status().String(),
		"blockReason":    o.BlockReason().String(),
		"holdReason":     o.HoldReason(),
		"bookingType":    o.BookingType().String(),
		"bookingManager": o.BookingManager().String(),
		"pallets":        o.Pallets(),
		"ldm":            o.LDM().String(),
	}))
	if o.Status() == order.BookingRequested {
		recorder.RecordEvent(statusChanged(o, from, event.Classified))
	}
	return nil
}
