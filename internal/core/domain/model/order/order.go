package order

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Attributes are the facts imported from the ERP. They never change after intake.
type Attributes struct {
	Reference            string
	Customer             string
	Consignee            string
	Destination          kernel.Destination
	ShipDate             time.Time
	Weight               decimal.Decimal // kg
	Volume               decimal.Decimal // m³
	Height               decimal.Decimal // m
	ConsolidationAllowed bool
}

// Metrics are the individual pallet count and loading metres of an order.
type Metrics struct {
	Pallets int64
	LDM     decimal.Decimal
}

// Consolidation is the result of pooling the orders sharing a consolidation key.
type Consolidation struct {
	Key           string
	SiblingCount  int
	Volume        decimal.Decimal
	Pallets       int64
	LDM           decimal.Decimal
	AllocatedLDM  decimal.Decimal
	EffectiveMode ShippingMode
}

// Classification is the outcome of classifying one order. It is applied as a
// whole so that mode, status and block reason never disagree.
type Classification struct {
	Mode           ShippingMode
	Status         Status
	BlockReason    BlockReason
	BlockDetail    string
	HoldReason     string
	BookingType    BookingType
	BookingManager BookingManager
	Metrics        Metrics
}

// State is the planning state of a persisted order, used by RestoreOrder.
type State struct {
	Status         Status
	Mode           ShippingMode
	EffectiveMode  ShippingMode
	BlockReason    BlockReason
	BlockDetail    string
	HoldReason     string
	BookingType    BookingType
	BookingManager BookingManager
	Metrics        Metrics
	Consolidation  Consolidation
	GroupID        *kernel.UUID
	TruckID        *kernel.UUID
}

// Order is a shipment order moving through classification, calculation,
// grouping, truck packing and booking.
//
// Invariants:
//   - an order belongs to at most one group and at most one truck
//   - an order on a truck is also in a group
//   - status changes only through the transition methods below
//   - orders are never deleted
type Order struct {
	id       kernel.UUID
	attrs    Attributes
	shipToID string

	status         Status
	mode           ShippingMode
	effectiveMode  ShippingMode
	blockReason    BlockReason
	blockDetail    string
	holdReason     string
	bookingType    BookingType
	bookingManager BookingManager

	metrics       Metrics
	consolidation Consolidation

	groupID *kernel.UUID
	truckID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewOrder validates the imported attributes and creates an OPEN order.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.Attributes{
//	    Reference:            "SO-1001",
//	    Consignee:            "Bol.com Distribution",
//	    Destination:          kernel.NewDestination("NL", "1012AB", "Amsterdam", "Damrak", "1"),
//	    ShipDate:             kernel.ShipDate(time.Now()),
//	    Weight:               decimal.NewFromInt(400),
//	    Volume:               decimal.RequireFromString("2.4"),
//	    Height:               decimal.RequireFromString("1.6"),
//	    ConsolidationAllowed: true,
//	})
func NewOrder(id kernel.UUID, attrs Attributes) (*Order, error) {
	o := &Order{
		status: Open,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setAttributes(attrs),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. Attributes are validated as in
// NewOrder and the state must be internally consistent.
func RestoreOrder(id kernel.UUID, attrs Attributes, state State) (*Order, error) {
	o, err := NewOrder(id, attrs)
	if err != nil {
		return nil, err
	}

	if err = state.Status.Validate(); err != nil {
		return nil, err
	}
	if state.TruckID != nil && state.GroupID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("truck", errors.New("order on a truck must be in a group"))
	}

	o.status = state.Status
	o.mode = state.Mode
	o.effectiveMode = state.EffectiveMode
	o.blockReason = state.BlockReason
	o.blockDetail = state.BlockDetail
	o.holdReason = state.HoldReason
	o.bookingType = state.BookingType
	o.bookingManager = state.BookingManager
	o.metrics = state.Metrics
	o.consolidation = state.Consolidation
	o.groupID = state.GroupID
	o.truckID = state.TruckID

	return o, nil
}

// Validate ensures the order was built by one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                 { return o.id }
func (o *Order) Attributes() Attributes          { return o.attrs }
func (o *Order) Reference() string               { return o.attrs.Reference }
func (o *Order) Customer() string                { return o.attrs.Customer }
func (o *Order) Consignee() string               { return o.attrs.Consignee }
func (o *Order) Destination() kernel.Destination { return o.attrs.Destination }
func (o *Order) Country() string                 { return o.attrs.Destination.Country() }
func (o *Order) ShipToID() string                { return o.shipToID }
func (o *Order) ShipDate() time.Time             { return o.attrs.ShipDate }
func (o *Order) Weight() decimal.Decimal         { return o.attrs.Weight }
func (o *Order) Volume() decimal.Decimal         { return o.attrs.Volume }
func (o *Order) Height() decimal.Decimal         { return o.attrs.Height }
func (o *Order) ConsolidationAllowed() bool      { return o.attrs.ConsolidationAllowed }

func (o *Order) Status() Status                 { return o.status }
func (o *Order) Mode() ShippingMode             { return o.mode }
func (o *Order) EffectiveMode() ShippingMode    { return o.effectiveMode }
func (o *Order) BlockReason() BlockReason       { return o.blockReason }
func (o *Order) BlockDetail() string            { return o.blockDetail }
func (o *Order) HoldReason() string             { return o.holdReason }
func (o *Order) BookingType() BookingType       { return o.bookingType }
func (o *Order) BookingManager() BookingManager { return o.bookingManager }
func (o *Order) Metrics() Metrics               { return o.metrics }
func (o *Order) Pallets() int64                 { return o.metrics.Pallets }
func (o *Order) LDM() decimal.Decimal           { return o.metrics.LDM }
func (o *Order) Consolidation() Consolidation   { return o.consolidation }
func (o *Order) ConsolidationKey() string       { return o.consolidation.Key }

// GroupID returns the group the order belongs to, nil when ungrouped.
func (o *Order) GroupID() *kernel.UUID { return o.groupID }

// TruckID returns the truck the order is loaded on, nil when not packed.
func (o *Order) TruckID() *kernel.UUID { return o.truckID }

// State returns the planning state in the form RestoreOrder accepts.
func (o *Order) State() State {
	return State{
		Status:         o.status,
		Mode:           o.mode,
		EffectiveMode:  o.effectiveMode,
		BlockReason:    o.blockReason,
		BlockDetail:    o.blockDetail,
		HoldReason:     o.holdReason,
		BookingType:    o.bookingType,
		BookingManager: o.bookingManager,
		Metrics:        o.metrics,
		Consolidation:  o.consolidation,
		GroupID:        o.groupID,
		TruckID:        o.truckID,
	}
}

// ApplyClassification stores a classification outcome. Orders that already
// joined a group are rejected: regrouping must go through the group first.
// Any previous consolidation is discarded because it was computed for the
// old mode.
func (o *Order) ApplyClassification(c Classification) error {
	if !o.status.IsClassifiable() {
		return errs.NewPreconditionFailedErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to classify", o.status),
		)
	}
	if o.groupID != nil {
		return errs.NewPreconditionFailedError("order belongs to a group and cannot be classified")
	}
	if err := c.Mode.Validate(); err != nil {
		return err
	}
	switch c.Status {
	case Open, Blocked, OnHold, BookingRequested:
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid classification outcome", c.Status),
		)
	}

	o.mode = c.Mode
	o.effectiveMode = c.Mode
	o.status = c.Status
	o.blockReason, o.blockDetail = NotBlocked, ""
	if c.Status == Blocked {
		o.blockReason, o.blockDetail = c.BlockReason, c.BlockDetail
	}
	o.holdReason = ""
	if c.Status == OnHold {
		o.holdReason = c.HoldReason
	}
	o.bookingType = c.BookingType
	o.bookingManager = c.BookingManager
	o.metrics = c.Metrics
	o.consolidation = Consolidation{}
	return nil
}

// RequestCalculation queues an OPEN order for pallet calculation.
func (o *Order) RequestCalculation() error {
	return o.moveTo(o.status.RequestCalculation)
}

// CompleteCalculation stores fresh metrics and consolidation results and
// marks the order CALCULATED.
func (o *Order) CompleteCalculation(m Metrics, c Consolidation) error {
	if err := o.moveTo(o.status.CompleteCalculation); err != nil {
		return err
	}
	o.metrics = m
	o.consolidation = c
	o.effectiveMode = c.EffectiveMode
	return nil
}

// Remix re-consolidates the order under a new key and attaches it to the
// remix group. Orders on a truck or already planned cannot be remixed.
func (o *Order) Remix(m Metrics, c Consolidation, groupID kernel.UUID) error {
	if o.truckID != nil || o.status.IsPlanned() {
		return errs.NewPreconditionFailedErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to remix", o.status),
		)
	}
	switch o.status {
	case PalletCalcRequested, Calculated, Grouped:
	default:
		return errs.NewPreconditionFailedErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to remix", o.status),
		)
	}

	o.status = Calculated
	o.metrics = m
	o.consolidation = c
	o.effectiveMode = c.EffectiveMode
	o.groupID = &groupID
	return nil
}

// AssignToGroup attaches a CALCULATED (or regrouped GROUPED) order to a group.
func (o *Order) AssignToGroup(groupID kernel.UUID) error {
	if err := groupID.Validate(); err != nil {
		return err
	}
	if err := o.moveTo(o.status.Group); err != nil {
		return err
	}
	o.groupID = &groupID
	return nil
}

// LeaveGroup detaches the order from its group and returns it to CALCULATED.
func (o *Order) LeaveGroup() error {
	if o.truckID != nil {
		return errs.NewPreconditionFailedError("order is loaded on a truck")
	}
	if err := o.moveTo(o.status.Ungroup); err != nil {
		return err
	}
	o.groupID = nil
	return nil
}

// LoadOnTruck records the truck carrying the order.
func (o *Order) LoadOnTruck(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}
	if o.groupID == nil {
		return errs.NewPreconditionFailedError("order without group cannot be loaded on a truck")
	}
	if err := o.moveTo(o.status.LoadOnTruck); err != nil {
		return err
	}
	o.truckID = &truckID
	return nil
}

// UnloadFromTruck clears the truck link; the order stays in its group.
func (o *Order) UnloadFromTruck() error {
	if err := o.moveTo(o.status.UnloadFromTruck); err != nil {
		return err
	}
	o.truckID = nil
	return nil
}

// Plan marks a TRUCKED order as PLANNED.
func (o *Order) Plan() error {
	return o.moveTo(o.status.Plan)
}

// Unplan reverts Plan.
func (o *Order) Unplan() error {
	return o.moveTo(o.status.Unplan)
}

// PlanAsParcel plans a parcel order without a truck.
func (o *Order) PlanAsParcel() error {
	if o.effectiveMode != Parcel {
		return errs.NewPreconditionFailedErrorWithCause(
			"shipping mode is invalid",
			fmt.Errorf("%s is not a parcel shipment", o.effectiveMode),
		)
	}
	if o.groupID != nil {
		return errs.NewPreconditionFailedError("parcel order belongs to a group")
	}
	return o.moveTo(o.status.PlanWithoutTruck)
}

// PlanDirect plans the order as part of a direct group without a truck.
func (o *Order) PlanDirect(groupID kernel.UUID) error {
	if err := groupID.Validate(); err != nil {
		return err
	}
	if err := o.moveTo(o.status.PlanWithoutTruck); err != nil {
		return err
	}
	o.groupID = &groupID
	o.truckID = nil
	return nil
}

// Reopen clears group and truck links and consolidation data and returns
// the order to OPEN so that it can be classified again.
func (o *Order) Reopen() error {
	if err := o.moveTo(o.status.Reopen); err != nil {
		return err
	}
	o.groupID = nil
	o.truckID = nil
	o.consolidation = Consolidation{}
	o.effectiveMode = o.mode
	return nil
}

// ResetToCalculated clears group and truck links but keeps the calculation.
func (o *Order) ResetToCalculated() error {
	if err := o.moveTo(o.status.ResetToCalculated); err != nil {
		return err
	}
	o.groupID = nil
	o.truckID = nil
	return nil
}

// Hold parks the order with a manual reason.
func (o *Order) Hold(reason string) error {
	if err := o.moveTo(o.status.Hold); err != nil {
		return err
	}
	o.holdReason = reason
	return nil
}

// Release reopens a held order.
func (o *Order) Release() error {
	if err := o.moveTo(o.status.Release); err != nil {
		return err
	}
	o.holdReason = ""
	return nil
}

func (o *Order) RequestBooking() error       { return o.moveTo(o.status.RequestBooking) }
func (o *Order) AcceptBooking() error        { return o.moveTo(o.status.AcceptBooking) }
func (o *Order) RejectBooking() error        { return o.moveTo(o.status.RejectBooking) }
func (o *Order) RequestConsolidation() error { return o.moveTo(o.status.RequestConsolidation) }
func (o *Order) ReserveAppointment() error   { return o.moveTo(o.status.ReserveAppointment) }
func (o *Order) BookAppointment() error      { return o.moveTo(o.status.BookAppointment) }
func (o *Order) Close() error                { return o.moveTo(o.status.Close) }

func (o *Order) moveTo(transition func() (Status, error)) error {
	next, err := transition()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setAttributes(attrs Attributes) error {
	var problems []error
	if attrs.Reference == "" {
		problems = append(problems, errs.NewValueIsRequiredError("reference"))
	}
	if err := attrs.Destination.Validate(); err != nil {
		problems = append(problems, err)
	}
	if attrs.ShipDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("ship date"))
	}
	for name, v := range map[string]decimal.Decimal{
		"weight": attrs.Weight,
		"volume": attrs.Volume,
		"height": attrs.Height,
	} {
		if v.IsNegative() {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				name+" is invalid", fmt.Errorf("%s is negative", v)))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	attrs.ShipDate = kernel.ShipDate(attrs.ShipDate)
	o.attrs = attrs
	o.shipToID = attrs.Destination.ShipToID()
	return nil
}
