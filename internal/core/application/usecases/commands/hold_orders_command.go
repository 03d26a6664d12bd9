package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrHoldOrdersCommandIsNotConstructed = errors.New(
	"HoldOrdersCommand must be created via NewHoldOrdersCommand constructor",
)

// HoldOrdersCommand parks orders ON_HOLD with a manual reason.
type HoldOrdersCommand struct {
	orderIDs []kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewHoldOrdersCommand creates a command to put orders on hold.
// Requires at least one order ID and a non-blank reason.
func NewHoldOrdersCommand(orderIDs []kernel.UUID, reason string) (HoldOrdersCommand, error) {
	ids, err := normalizeOrderIDs(orderIDs, true)
	if err != nil {
		return HoldOrdersCommand{}, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return HoldOrdersCommand{}, errs.NewValueIsRequiredError("hold reason")
	}

	return HoldOrdersCommand{
		orderIDs: ids,
		reason:   reason,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c HoldOrdersCommand) Validate() error {
	return c.guard.Validate(ErrHoldOrdersCommandIsNotConstructed)
}

func (c HoldOrdersCommand) OrderIDs() []kernel.UUID { return c.orderIDs }
func (c HoldOrdersCommand) Reason() string          { return c.reason }
