package http

import (
	"errors"
	"net/http"
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

// Response is the envelope of every API response.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func ok(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// fail maps domain errors to status codes. Unexpected errors are logged and
// reported without details.
func (s *Server) fail(c echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = "internal error"
	}
	return c.JSON(status, Response{Success: false, Message: message})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type OrderResponse struct {
	ID               string  `json:"id"`
	Reference        string  `json:"reference"`
	Consignee        string  `json:"consignee"`
	Country          string  `json:"country"`
	ShipDate         string  `json:"shipDate"`
	Status           string  `json:"status"`
	Mode             string  `json:"mode"`
	EffectiveMode    string  `json:"effectiveMode"`
	BlockReason      string  `json:"blockReason,omitempty"`
	BlockDetail      string  `json:"blockDetail,omitempty"`
	HoldReason       string  `json:"holdReason,omitempty"`
	Pallets          int64   `json:"pallets"`
	LDM              string  `json:"ldm"`
	ConsolidationKey string  `json:"consolidationKey,omitempty"`
	GroupID          *string `json:"groupId,omitempty"`
	TruckID          *string `json:"truckId,omitempty"`
}

func orderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:               o.ID().String(),
		Reference:        o.Reference(),
		Consignee:        o.Consignee(),
		Country:          o.Country(),
		ShipDate:         o.ShipDate().Format(kernel.ShipDateLayout),
		Status:           o.Status().String(),
		Mode:             o.Mode().String(),
		EffectiveMode:    o.EffectiveMode().String(),
		BlockDetail:      o.BlockDetail(),
		HoldReason:       o.HoldReason(),
		Pallets:          o.Pallets(),
		LDM:              o.LDM().String(),
		ConsolidationKey: o.ConsolidationKey(),
		GroupID:          idString(o.GroupID()),
		TruckID:          idString(o.TruckID()),
	}
	if o.Status() == order.Blocked {
		resp.BlockReason = o.BlockReason().String()
	}
	return resp
}

func unplannedResponse(rows []queries.UnplannedOrder) []OrderResponse {
	return lo.Map(rows, func(r queries.UnplannedOrder, _ int) OrderResponse {
		resp := OrderResponse{
			ID:               r.ID.String(),
			Reference:        r.Reference,
			Consignee:        r.Consignee,
			Country:          r.Country,
			ShipDate:         r.ShipDate.Format(kernel.ShipDateLayout),
			Status:           r.Status,
			Mode:             r.Mode,
			EffectiveMode:    r.EffectiveMode,
			HoldReason:       r.HoldReason,
			Pallets:          r.Pallets,
			LDM:              r.LDM.String(),
			ConsolidationKey: r.ConsolidationKey,
			GroupID:          idString(r.GroupID),
			TruckID:          idString(r.TruckID),
		}
		if r.Status == order.Blocked.String() {
			resp.BlockReason = r.BlockReason
		}
		return resp
	})
}

type LaneBoardResponse struct {
	LaneID        string `json:"laneId"`
	LaneName      string `json:"laneName"`
	ShipDate      string `json:"shipDate"`
	Groups        int    `json:"groups"`
	Orders        int    `json:"orders"`
	Pallets       int64  `json:"pallets"`
	LDM           string `json:"ldm"`
	Trucks        int    `json:"trucks"`
	OpenTrucks    int    `json:"openTrucks"`
	PlannedTrucks int    `json:"plannedTrucks"`
	Planned       bool   `json:"planned"`
}

func laneBoardResponse(rows []queries.LaneBoardRow) []LaneBoardResponse {
	return lo.Map(rows, func(r queries.LaneBoardRow, _ int) LaneBoardResponse {
		return LaneBoardResponse{
			LaneID:        r.LaneID.String(),
			LaneName:      r.LaneName,
			ShipDate:      r.ShipDate.Format(kernel.ShipDateLayout),
			Groups:        r.Groups,
			Orders:        r.Orders,
			Pallets:       r.Pallets,
			LDM:           r.LDM.String(),
			Trucks:        r.Trucks,
			OpenTrucks:    r.OpenTrucks,
			PlannedTrucks: r.PlannedTrucks,
			Planned:       r.IsPlanned(),
		}
	})
}

type EventResponse struct {
	ID         string         `json:"id"`
	EntityType string         `json:"entityType"`
	EventType  string         `json:"eventType"`
	Payload    map[string]any `json:"payload"`
	Actor      string         `json:"actor"`
	OccurredAt string         `json:"occurredAt"`
}

func eventsResponse(events []queries.EntityEvent) []EventResponse {
	return lo.Map(events, func(e queries.EntityEvent, _ int) EventResponse {
		return EventResponse{
			ID:         e.ID.String(),
			EntityType: e.EntityType,
			EventType:  e.EventType,
			Payload:    e.Payload,
			Actor:      e.Actor,
			OccurredAt: e.OccurredAt.UTC().Format(time.RFC3339),
		}
	})
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	return lo.ToPtr(id.String())
}
