package commands

import (
	"context"
)

// RequestCalculationCommandHandler queues orders for calculation and
// returns how many were queued.
type RequestCalculationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRequestCalculationCommandHandler creates a handler for calculation requests.
func NewRequestCalculationCommandHandler(uowFactory OrderUoWFactory) RequestCalculationCommandHandler {
	return RequestCalculationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the eligible orders to CALCULATION_REQUESTED in one
// transaction and returns how many were queued. Selected orders that are not
// OPEN are skipped.
func (h RequestCalculationCommandHandler) Handle(ctx context.Context, cmd RequestCalculationCommand) (int, error) {
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

	requested, err := calculation{}.request(ctx, uow, cmd.OrderIDs())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return requested, nil
}
