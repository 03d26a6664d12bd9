package commands

import (
	"context"
	"log/slog"
	"sync/atomic"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/services"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const defaultClassifyWorkers = 4

// ClassifyAllResult counts the outcome of a batch classification.
type ClassifyAllResult struct {
	Classified int
	Skipped    int
	Failed     int
}

// ClassifyAllOpenCommandHandler classifies all OPEN orders in parallel.
//
// The rule snapshot is taken once so that the whole batch is evaluated
// against the same rules. Each order is re-read and written in its own
// transaction; a failing order is logged and does not stop the batch.
// Cancelling ctx stops the batch between orders.
type ClassifyAllOpenCommandHandler struct {
	uowFactory ClassifyUoWFactory
	validator  services.GroupageValidator
	workers    int
	logger     *slog.Logger
}

// NewClassifyAllOpenCommandHandler creates a handler for batch classification.
// A non-positive worker count falls back to the default.
func NewClassifyAllOpenCommandHandler(
	uowFactory ClassifyUoWFactory,
	validator services.GroupageValidator,
	workers int,
	logger *slog.Logger,
) ClassifyAllOpenCommandHandler {
	if workers <= 0 {
		workers = defaultClassifyWorkers
	}
	return ClassifyAllOpenCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		workers:    workers,
		logger:     logger.With("component", "ClassifyAllOpen"),
	}
}

// Handle loads the rules once and classifies every OPEN order concurrently,
// one transaction per order. Failures are counted and logged, never returned;
// the error is only set when ctx ends the batch early.
func (h ClassifyAllOpenCommandHandler) Handle(ctx context.Context, cmd ClassifyAllOpenCommand) (ClassifyAllResult, error) {
	if err := cmd.Validate(); err != nil {
		return ClassifyAllResult{}, err
	}

	classifier, ids, err := h.prepare(ctx)
	if err != nil {
		return ClassifyAllResult{}, err
	}

	var classified, skipped, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(h.workers)

	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			done, err := h.classifyOne(ctx, classifier, id)
			switch {
			case err != nil:
				failed.Add(1)
				h.logger.Warn("order classification failed", "orderId", id.String(), "error", err)
			case done:
				classified.Add(1)
			default:
				skipped.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	result := ClassifyAllResult{
		Classified: int(classified.Load()),
		Skipped:    int(skipped.Load()),
		Failed:     int(failed.Load()),
	}
	h.logger.Info("classification batch finished",
		"classified", result.Classified,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, ctx.Err()
}

func (h ClassifyAllOpenCommandHandler) prepare(ctx context.Context) (*services.Classifier, []kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rules, err := uow.RuleRepository().Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	open, err := uow.OrderRepository().FindByStatus(ctx, order.Open)
	if err != nil {
		return nil, nil, err
	}

	ids := lo.Map(open, func(o *order.Order, _ int) kernel.UUID { return o.ID() })
	return services.NewClassifier(rules, h.validator), ids, nil
}

// classifyOne reports false when the order left OPEN since the batch started.
func (h ClassifyAllOpenCommandHandler) classifyOne(ctx context.Context, classifier *services.Classifier, id kernel.UUID) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if o.Status() != order.Open {
		return false, nil
	}

	if err = classifyOrder(uow, classifier, o); err != nil {
		return false, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}
	return true, uow.Commit(ctx)
}
