package services

import (
	"fmt"

	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/rule"

	"github.com/shopspring/decimal"
)

// Measurements are the physical figures checked against groupage ceilings.
type Measurements struct {
	Height  decimal.Decimal
	Pallets int64
	Volume  decimal.Decimal
	LDM     decimal.Decimal
}

// Verdict is the validation outcome for one order.
type Verdict struct {
	Mode       order.ShippingMode
	Status     order.Status
	HoldReason string
}

// GroupageValidator checks groupage orders against the LDM ceiling and the
// destination country's limits. Other modes pass through unchanged.
type GroupageValidator struct {
	ldmCeiling decimal.Decimal
}

// NewGroupageValidator uses DefaultGroupageLDMCeiling when ldmCeiling is not positive.
func NewGroupageValidator(ldmCeiling decimal.Decimal) GroupageValidator {
	if !ldmCeiling.IsPositive() {
		ldmCeiling = DefaultGroupageLDMCeiling
	}
	return GroupageValidator{ldmCeiling: ldmCeiling}
}

// LDMCeiling returns the configured groupage ceiling.
func (v GroupageValidator) LDMCeiling() decimal.Decimal {
	return v.ldmCeiling
}

// Validate returns other modes with their status unchanged. Groupage orders
// get, in order:
//  1. LDM above the groupage ceiling: the order is upgraded to DIRECT_PARTIAL and stays OPEN
//  2. the first exceeded country ceiling among height, pallets, volume, LDM puts it ON_HOLD
//  3. otherwise it stays OPEN in its mode
func (v GroupageValidator) Validate(mode order.ShippingMode, status order.Status, m Measurements, countryRule *rule.CountryRule) Verdict {
	if mode != order.Groupage {
		return Verdict{Mode: mode, Status: status}
	}
	if m.LDM.GreaterThan(v.ldmCeiling) {
		return Verdict{Mode: order.DirectPartial, Status: order.Open}
	}
	if countryRule == nil {
		return Verdict{Mode: mode, Status: order.Open}
	}

	if reason := exceededCeiling(m, *countryRule); reason != "" {
		return Verdict{Mode: mode, Status: order.OnHold, HoldReason: reason}
	}
	return Verdict{Mode: mode, Status: order.Open}
}

func exceededCeiling(m Measurements, r rule.CountryRule) string {
	switch {
	case r.MaxHeight.Valid && m.Height.GreaterThan(r.MaxHeight.Decimal):
		return fmt.Sprintf("%s: Max Height %sm exceeded", r.Code(), r.MaxHeight.Decimal)
	case r.MaxPallets != nil && m.Pallets > *r.MaxPallets:
		return fmt.Sprintf("%s: Max Pallets %d exceeded", r.Code(), *r.MaxPallets)
	case r.MaxVolume.Valid && m.Volume.GreaterThan(r.MaxVolume.Decimal):
		return fmt.Sprintf("%s: Max Volume %sm3 exceeded", r.Code(), r.MaxVolume.Decimal)
	case r.MaxLDM.Valid && m.LDM.GreaterThan(r.MaxLDM.Decimal):
		return fmt.Sprintf("%s: Max LDM %sm exceeded", r.Code(), r.MaxLDM.Decimal)
	default:
		return ""
	}
}
