package services

import (
	"fmt"
	"strings"

	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/rule"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	retailerMarkers    = []string{"AMAZON", "BOL.COM"}
	distributorMarkers = []string{"TECHDATA"}
	logisticsMarkers   = []string{"LOGISTICS CORP"}

	// HighWeightCutoff is the weight in kg above which an order needs a delivery advice.
	HighWeightCutoff = decimal.NewFromInt(10000)
)

// Classifier decides the shipping mode, status and booking workflow of an
// order against one rule snapshot.
//
// The result is a pure function of the order attributes and the snapshot:
// classifying the same order twice with unchanged rules yields the same
// outcome.
//
// Example:
//
//	classifier := services.NewClassifier(rules, services.NewGroupageValidator(decimal.NewFromInt(3)))
//	c := classifier.Classify(o)
//	err := o.ApplyClassification(c)
type Classifier struct {
	rules     *rule.Set
	validator GroupageValidator
}

// NewClassifier creates a classifier over one rule snapshot.
func NewClassifier(rules *rule.Set, validator GroupageValidator) *Classifier {
	return &Classifier{rules: rules, validator: validator}
}

func (c *Classifier) Rules() *rule.Set {
	return c.rules
}

// Classify runs, in order: mode selection, the blocking checks, individual
// metrics, groupage validation of OPEN groupage orders and the booking
// workflow assignment.
func (c *Classifier) Classify(o *order.Order) order.Classification {
	result := order.Classification{
		Mode:    c.ModeFor(o),
		Status:  order.Open,
		Metrics: IndividualMetrics(o.Volume()),
	}

	if reason, detail := c.blockFor(o, result.Mode); reason != order.NotBlocked {
		result.Status = order.Blocked
		result.BlockReason = reason
		result.BlockDetail = detail
	}

	if result.Status == order.Open && result.Mode == order.Groupage {
		var countryRule *rule.CountryRule
		if r, ok := c.rules.CountryRule(o.Country()); ok {
			countryRule = &r
		}
		verdict := c.validator.Validate(result.Mode, result.Status, Measurements{
			Height:  o.Height(),
			Pallets: result.Metrics.Pallets,
			Volume:  o.Volume(),
			LDM:     result.Metrics.LDM,
		}, countryRule)
		result.Mode = verdict.Mode
		result.Status = verdict.Status
		result.HoldReason = verdict.HoldReason
	}

	result.BookingType, result.BookingManager = BookingFor(o.Consignee(), o.Weight())
	if order.RequiresBookingRequest(result.BookingType, result.BookingManager) {
		result.Status = order.BookingRequested
	}
	return result
}

// ModeFor picks the shipping mode; the first matching rule wins.
func (c *Classifier) ModeFor(o *order.Order) order.ShippingMode {
	thresholds := c.rules.Thresholds()
	volume := o.Volume()

	switch {
	case c.rules.ForcesDirect(o.ShipToID(), o.Country(), o.Customer()):
		if volume.GreaterThanOrEqual(thresholds.FTL) {
			return order.DirectFull
		}
		return order.DirectPartial
	case volume.GreaterThanOrEqual(thresholds.FTL):
		return order.DirectFull
	case volume.GreaterThanOrEqual(thresholds.Direct):
		return order.DirectPartial
	case c.parcelEligible(o):
		return order.Parcel
	default:
		return order.Groupage
	}
}

func (c *Classifier) parcelEligible(o *order.Order) bool {
	if !o.ConsolidationAllowed() {
		return false
	}
	r, ok := c.rules.ParcelRule(o.Country())
	return ok && r.Admits(o.Weight(), o.Volume())
}

func (c *Classifier) blockFor(o *order.Order, mode order.ShippingMode) (order.BlockReason, string) {
	if o.ShipToID() == "" || o.Country() == "" {
		return order.MissingMasterdata, "ship-to id or country is missing"
	}
	if mode == order.Groupage {
		if _, ok := c.rules.LaneFor(o.Country()); !ok {
			return order.LaneNotFound, fmt.Sprintf("no active lane covers %s", o.Country())
		}
	}
	if r, ok := c.rules.CountryRule(o.Country()); ok && r.MaxHeight.Valid && o.Height().GreaterThan(r.MaxHeight.Decimal) {
		return order.DimensionLimitExceeded, fmt.Sprintf("%s: height %sm exceeds %sm", r.Code(), o.Height(), r.MaxHeight.Decimal)
	}
	return order.NotBlocked, ""
}

// BookingFor derives the booking workflow from the consignee name and weight.
func BookingFor(consignee string, weight decimal.Decimal) (order.BookingType, order.BookingManager) {
	name := strings.ToUpper(consignee)
	contains := func(marker string) bool { return strings.Contains(name, marker) }

	switch {
	case lo.SomeBy(retailerMarkers, contains):
		return order.BookingAppointment, order.ManagerCarrier
	case lo.SomeBy(distributorMarkers, contains):
		return order.BookingAppointment, order.ManagerControlTower
	case lo.SomeBy(logisticsMarkers, contains), weight.GreaterThan(HighWeightCutoff):
		return order.BookingAdvice, order.ManagerCarrier
	default:
		return order.BookingStandard, order.ManagerCarrier
	}
}
