package commands

import (
	"context"
	"slices"

	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// calculation holds the steps shared by the calculation commands.
type calculation struct {
	groupageCeiling decimal.Decimal
}

// request moves OPEN orders to PALLET_CALC_REQUESTED. Without ids every OPEN
// order is requested; selected orders in other statuses are skipped.
func (c calculation) request(ctx context.Context, uow OrderUoW, ids []kernel.UUID) (int, error) {
	orderRepo := uow.OrderRepository()

	candidates, err := loadOrFind(ctx, orderRepo, ids, order.Open)
	if err != nil {
		return 0, err
	}

	requested := 0
	for _, o := range candidates {
		if o.Status() != order.Open {
			continue
		}
		if err = o.RequestCalculation(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		uow.RecordEvent(event.New(event.EntityOrder, o.ID(), event.CalcRequested, map[string]any{
			"mode": o.Mode().String(),
		}))
		requested++
	}
	return requested, nil
}

// complete computes metrics and consolidation for PALLET_CALC_REQUESTED
// orders, or for selected CALCULATED orders. Already CALCULATED orders that
// share a consolidation key with the batch are pooled and re-stamped so that
// all members of a key agree on the consolidated totals.
func (c calculation) complete(ctx context.Context, uow OrderUoW, ids []kernel.UUID) (int, error) {
	orderRepo := uow.OrderRepository()

	candidates, err := loadOrFind(ctx, orderRepo, ids, order.PalletCalcRequested)
	if err != nil {
		return 0, err
	}

	batch := lo.Filter(candidates, func(o *order.Order, _ int) bool {
		return o.Status() == order.PalletCalcRequested || (len(ids) > 0 && o.Status() == order.Calculated)
	})
	if len(batch) == 0 {
		return 0, nil
	}

	keys := lo.Uniq(lo.Map(batch, func(o *order.Order, _ int) string { return services.ConsolidationKeyFor(o) }))
	siblings, err := orderRepo.FindCalculatedByConsolidationKeys(ctx, keys)
	if err != nil {
		return 0, err
	}

	inBatch := lo.SliceToMap(batch, func(o *order.Order) (string, bool) { return o.ID().String(), true })
	pool := slices.Concat(batch, lo.Reject(siblings, func(o *order.Order, _ int) bool {
		return inBatch[o.ID().String()] || !keyMatches(o)
	}))

	for _, result := range services.ConsolidateByKey(pool, c.groupageCeiling) {
		o := result.Order
		if err = o.CompleteCalculation(result.Metrics, result.Consolidation); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		uow.RecordEvent(event.New(event.EntityOrder, o.ID(), event.CalcCompleted, map[string]any{
			"consolidationKey": result.Consolidation.Key,
			"siblings":         result.Consolidation.SiblingCount,
			"pallets":          result.Metrics.Pallets,
			"ldm":              result.Metrics.LDM.String(),
			"allocatedLdm":     result.Consolidation.AllocatedLDM.String(),
			"effectiveMode":    result.Consolidation.EffectiveMode.String(),
		}))
	}
	return len(batch), nil
}

// keyMatches filters out CALCULATED orders whose stored key is stale, for
// example remixed orders.
func keyMatches(o *order.Order) bool {
	return o.ConsolidationKey() == services.ConsolidationKeyFor(o)
}

func loadOrFind(
	ctx context.Context,
	repo ports.OrderRepository,
	ids []kernel.UUID,
	status order.Status,
) ([]*order.Order, error) {
	if len(ids) == 0 {
		return repo.FindByStatus(ctx, status)
	}
	return repo.GetMany(ctx, ids)
}
