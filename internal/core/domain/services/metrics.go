package services

import (
	"slices"

	"freight/internal/core/domain/model/order"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	// PalletVolume is the volume of one standard pallet in m³.
	PalletVolume = decimal.RequireFromString("1.2")

	// LDMPerPallet is the loading length one pallet occupies, in metres.
	LDMPerPallet = decimal.RequireFromString("0.42")

	// DefaultGroupageLDMCeiling is the largest consolidated LDM still shipped as groupage.
	DefaultGroupageLDMCeiling = decimal.NewFromInt(3)
)

// PalletsFor returns ceil(volume / 1.2); zero or negative volume needs no pallet.
func PalletsFor(volume decimal.Decimal) int64 {
	if !volume.IsPositive() {
		return 0
	}
	return volume.Div(PalletVolume).Ceil().IntPart()
}

// LDMFor returns pallets × 0.42 rounded to two decimals.
func LDMFor(pallets int64) decimal.Decimal {
	return decimal.NewFromInt(pallets).Mul(LDMPerPallet).Round(2)
}

// IndividualMetrics computes the pallet count and LDM of a single volume.
func IndividualMetrics(volume decimal.Decimal) order.Metrics {
	pallets := PalletsFor(volume)
	return order.Metrics{Pallets: pallets, LDM: LDMFor(pallets)}
}

// AllocatedShare splits a consolidated LDM proportionally to volume,
// rounded to two decimals. A zero total volume yields zero.
func AllocatedShare(consolidatedLDM, volume, totalVolume decimal.Decimal) decimal.Decimal {
	if totalVolume.IsZero() {
		return decimal.Zero
	}
	return consolidatedLDM.Mul(volume).Div(totalVolume).Round(2)
}

// EffectiveMode derives the shipping mode of a consolidated set:
//   - any DIRECT_FULL member makes the set DIRECT_FULL
//   - otherwise any DIRECT_PARTIAL member makes it DIRECT_PARTIAL
//   - a consolidated LDM above the groupage ceiling makes it DIRECT_PARTIAL
//   - a set made only of parcels stays PARCEL
//   - anything else is GROUPAGE
func EffectiveMode(modes []order.ShippingMode, consolidatedLDM, groupageCeiling decimal.Decimal) order.ShippingMode {
	switch {
	case slices.Contains(modes, order.DirectFull):
		return order.DirectFull
	case slices.Contains(modes, order.DirectPartial):
		return order.DirectPartial
	case consolidatedLDM.GreaterThan(groupageCeiling):
		return order.DirectPartial
	case len(modes) > 0 && lo.EveryBy(modes, func(m order.ShippingMode) bool { return m == order.Parcel }):
		return order.Parcel
	default:
		return order.Groupage
	}
}

// ConsolidationResult is the calculation outcome of one order.
type ConsolidationResult struct {
	Order         *order.Order
	Metrics       order.Metrics
	Consolidation order.Consolidation
}

// Consolidate pools members under key. The consolidated pallet count is
// derived from the pooled volume, so small orders share pallets; each member
// receives its volume-proportional share of the pooled LDM.
func Consolidate(key string, members []*order.Order, groupageCeiling decimal.Decimal) []ConsolidationResult {
	totalVolume := lo.Reduce(members, func(acc decimal.Decimal, o *order.Order, _ int) decimal.Decimal {
		return acc.Add(o.Volume())
	}, decimal.Zero)
	pallets := PalletsFor(totalVolume)
	ldm := LDMFor(pallets)
	mode := EffectiveMode(lo.Map(members, func(o *order.Order, _ int) order.ShippingMode {
		return o.Mode()
	}), ldm, groupageCeiling)

	return lo.Map(members, func(o *order.Order, _ int) ConsolidationResult {
		return ConsolidationResult{
			Order:   o,
			Metrics: IndividualMetrics(o.Volume()),
			Consolidation: order.Consolidation{
				Key:           key,
				SiblingCount:  len(members),
				Volume:        totalVolume,
				Pallets:       pallets,
				LDM:           ldm,
				AllocatedLDM:  AllocatedShare(ldm, o.Volume(), totalVolume),
				EffectiveMode: mode,
			},
		}
	})
}

// ConsolidateByKey buckets orders by their consolidation key and pools each
// bucket. Results follow the first appearance of each key in orders.
func ConsolidateByKey(orders []*order.Order, groupageCeiling decimal.Decimal) []ConsolidationResult {
	keys := lo.Uniq(lo.Map(orders, func(o *order.Order, _ int) string { return ConsolidationKeyFor(o) }))
	buckets := lo.GroupBy(orders, ConsolidationKeyFor)

	results := make([]ConsolidationResult, 0, len(orders))
	for _, key := range keys {
		results = append(results, Consolidate(key, buckets[key], groupageCeiling)...)
	}
	return results
}
