package http

import (
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type DestinationRequest struct {
	Country     string `json:"country"`
	Zip         string `json:"zip"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
}

func (d DestinationRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Country, validation.Required, validation.Length(2, 2), is.Alpha),
		validation.Field(&d.Zip, validation.Required),
		validation.Field(&d.City, validation.Required),
	)
}

type CreateOrderRequest struct {
	Reference            string             `json:"reference"`
	Customer             string             `json:"customer"`
	Consignee            string             `json:"consignee"`
	Destination          DestinationRequest `json:"destination"`
	ShipDate             string             `json:"shipDate"`
	Weight               decimal.Decimal    `json:"weight"`
	Volume               decimal.Decimal    `json:"volume"`
	Height               decimal.Decimal    `json:"height"`
	ConsolidationAllowed bool               `json:"consolidationAllowed"`
}

// OrderSelectionRequest selects orders for a batch operation.
type OrderSelectionRequest struct {
	OrderIDs []string `json:"orderIds"`
}

type HoldOrdersRequest struct {
	OrderIDs []string `json:"orderIds"`
	Reason   string   `json:"reason"`
}

type AdvanceBookingRequest struct {
	OrderIDs []string `json:"orderIds"`
	Action   string   `json:"action"`
}

type ExecuteGroupingRequest struct {
	ShipDate string `json:"shipDate"`
}

type AddOrderToGroupRequest struct {
	OrderID string `json:"orderId"`
}

type CalculateTrucksRequest struct {
	ShipDate  string          `json:"shipDate"`
	TruckType string          `json:"truckType"`
	Capacity  decimal.Decimal `json:"capacity"`
	OrderIDs  []string        `json:"orderIds"`
}

type ExecutePlanRequest struct {
	ShipDate string `json:"shipDate"`
}

var shipDateRule = validation.Date(kernel.ShipDateLayout)

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", err.Error(), errs.ErrValueIsInvalid)
}

func ValidateCreateOrderRequest(req CreateOrderRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.Reference, validation.Required, validation.Length(1, 64)),
		validation.Field(&req.Consignee, validation.Required),
		validation.Field(&req.ShipDate, validation.Required, shipDateRule),
		validation.Field(&req.Destination),
		validation.Field(&req.Weight, validation.By(nonNegative)),
		validation.Field(&req.Volume, validation.By(nonNegative)),
		validation.Field(&req.Height, validation.By(nonNegative)),
	))
}

func ValidateOrderSelectionRequest(req OrderSelectionRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.OrderIDs, validation.Required, validation.Each(is.UUID)),
	))
}

// ValidateOptionalOrderSelectionRequest accepts an empty selection, meaning
// "every eligible order".
func ValidateOptionalOrderSelectionRequest(req OrderSelectionRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.OrderIDs, validation.Each(is.UUID)),
	))
}

func ValidateHoldOrdersRequest(req HoldOrdersRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.OrderIDs, validation.Required, validation.Each(is.UUID)),
		validation.Field(&req.Reason, validation.Required, validation.Length(1, 255)),
	))
}

func ValidateAdvanceBookingRequest(req AdvanceBookingRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.OrderIDs, validation.Required, validation.Each(is.UUID)),
		validation.Field(&req.Action, validation.Required),
	))
}

func ValidateExecuteGroupingRequest(req ExecuteGroupingRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.ShipDate, shipDateRule),
	))
}

func ValidateAddOrderToGroupRequest(req AddOrderToGroupRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.OrderID, validation.Required, is.UUID),
	))
}

func ValidateCalculateTrucksRequest(req CalculateTrucksRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.ShipDate, validation.Required, shipDateRule),
		validation.Field(&req.TruckType, validation.Required),
		validation.Field(&req.Capacity, validation.By(nonNegative)),
		validation.Field(&req.OrderIDs, validation.Each(is.UUID)),
	))
}

func ValidateExecutePlanRequest(req ExecutePlanRequest) error {
	return invalid(validation.ValidateStruct(&req,
		validation.Field(&req.ShipDate, validation.Required, shipDateRule),
	))
}

func nonNegative(value any) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_decimal", "must be a decimal")
	}
	if d.IsNegative() {
		return validation.NewError("validation_non_negative", "must not be negative")
	}
	return nil
}

// parseIDs parses identifiers that already passed is.UUID.
func parseIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(strings.TrimSpace(s))
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("order id", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseID(name, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// parseOptionalShipDate returns nil for an empty value.
func parseOptionalShipDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := kernel.ParseShipDate(raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("ship date", err)
	}
	return &date, nil
}

// bindDateQuery binds an optional YYYY-MM-DD query parameter.
func bindDateQuery(c echo.Context, name string) (*time.Time, error) {
	var date *openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &date); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if date == nil {
		return nil, nil
	}
	day := kernel.ShipDate(date.Time)
	return &day, nil
}

func parseShipDate(raw string) (time.Time, error) {
	date, err := kernel.ParseShipDate(raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("ship date", err)
	}
	return date, nil
}
