package commands

import (
	"context"

	"freight/internal/core/domain/services"
)

// CompleteCalculationCommandHandler calculates queued orders and returns how
// many were calculated.
type CompleteCalculationCommandHandler struct {
	uowFactory  OrderUoWFactory
	calculation calculation
}

// NewCompleteCalculationCommandHandler creates a handler for calculation completion.
// The validator supplies the groupage LDM ceiling used for escalation.
func NewCompleteCalculationCommandHandler(
	uowFactory OrderUoWFactory,
	validator services.GroupageValidator,
) CompleteCalculationCommandHandler {
	return CompleteCalculationCommandHandler{
		uowFactory:  uowFactory,
		calculation: calculation{groupageCeiling: validator.LDMCeiling()},
	}
}

// Handle stamps consolidation keys, metrics and effective modes on the
// queued orders and returns how many became CALCULATED. Everything happens in
// one transaction.
func (h CompleteCalculationCommandHandler) Handle(ctx context.Context, cmd CompleteCalculationCommand) (int, error) {
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

	calculated, err := h.calculation.complete(ctx, uow, cmd.OrderIDs())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return calculated, nil
}
