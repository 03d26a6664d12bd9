package rule

import (
	"slices"
	"strings"

	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CountryRule holds the groupage ceilings of a destination country. Unset
// ceilings are not checked.
type CountryRule struct {
	Country         string
	RestrictionCode string
	MaxHeight       decimal.NullDecimal
	MaxPallets      *int64
	MaxVolume       decimal.NullDecimal
	MaxLDM          decimal.NullDecimal
}

// Code returns the restriction code used in hold reasons, falling back to
// the country when the rule has none.
func (r CountryRule) Code() string {
	if r.RestrictionCode != "" {
		return r.RestrictionCode
	}
	return r.Country
}

// ParcelRule allows parcel shipping to a country within optional ceilings.
type ParcelRule struct {
	Country   string
	Allow     bool
	MaxWeight decimal.NullDecimal
	MaxVolume decimal.NullDecimal
}

// Admits reports whether an order of the given weight and volume may ship as a parcel.
func (r ParcelRule) Admits(weight, volume decimal.Decimal) bool {
	if !r.Allow {
		return false
	}
	if r.MaxWeight.Valid && weight.GreaterThan(r.MaxWeight.Decimal) {
		return false
	}
	if r.MaxVolume.Valid && volume.GreaterThan(r.MaxVolume.Decimal) {
		return false
	}
	return true
}

// ForceDirectRule sends every order for a ship-to point direct. Country and
// Customer narrow the match when set.
type ForceDirectRule struct {
	ShipToID string
	Country  string
	Customer string
	Active   bool
}

// Matches reports whether the rule applies to an order with these properties.
func (r ForceDirectRule) Matches(shipToID, country, customer string) bool {
	if !r.Active || r.ShipToID == "" || r.ShipToID != shipToID {
		return false
	}
	if r.Country != "" && !strings.EqualFold(r.Country, country) {
		return false
	}
	if r.Customer != "" && !strings.EqualFold(r.Customer, customer) {
		return false
	}
	return true
}

// Thresholds are the volume limits for direct shipping, in m³.
type Thresholds struct {
	FTL    decimal.Decimal
	Direct decimal.Decimal
}

// DefaultThresholds are used when the store has no positive values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FTL:    decimal.NewFromInt(70),
		Direct: decimal.RequireFromString("15.6"),
	}
}

// WithDefaults replaces non-positive values with the defaults.
func (t Thresholds) WithDefaults() Thresholds {
	def := DefaultThresholds()
	if !t.FTL.IsPositive() {
		t.FTL = def.FTL
	}
	if !t.Direct.IsPositive() {
		t.Direct = def.Direct
	}
	return t
}

// Lane is a named set of destination countries served by the same trucks.
// Lower Priority wins when lanes overlap.
type Lane struct {
	ID        kernel.UUID
	Name      string
	Countries []string
	Priority  int
	Active    bool
}

// Covers reports whether the lane is active and serves the country.
func (l Lane) Covers(country string) bool {
	return l.Active && slices.ContainsFunc(l.Countries, func(c string) bool {
		return strings.EqualFold(c, country)
	})
}
