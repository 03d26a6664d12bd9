package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary	Register an order imported from the ERP
//	@Tags	Orders
//	@ID	createOrder
//	@Accept	json
//	@Produce	json
//	@Param	body	body	CreateOrderRequest	true	"Request body"
//	@Success	201	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err := ValidateCreateOrderRequest(req); err != nil {
		return s.fail(c, err)
	}

	shipDate, err := parseShipDate(req.ShipDate)
	if err != nil {
		return s.fail(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, order.Attributes{
		Reference: req.Reference,
		Customer:  req.Customer,
		Consignee: req.Consignee,
		Destination: kernel.NewDestination(
			req.Destination.Country,
			req.Destination.Zip,
			req.Destination.City,
			req.Destination.Street,
			req.Destination.HouseNumber,
		),
		ShipDate:             shipDate,
		Weight:               req.Weight,
		Volume:               req.Volume,
		Height:               req.Height,
		ConsolidationAllowed: req.ConsolidationAllowed,
	})
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusCreated, "order created", map[string]string{"id": orderID.String()})
}

// ClassifyOrder handles POST /api/v1/orders/:id/classify.
//
//	@Summary	Classify one order
//	@Tags	Orders
//	@ID	classifyOrder
//	@Produce	json
//	@Param	id	path	string	true	"Order ID"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/{id}/classify [post]
func (s *Server) ClassifyOrder(c echo.Context) error {
	orderID, err := parseID("order id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewClassifyOrderCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	classified, err := s.handlers.ClassifyOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "order classified", orderResponse(classified))
}

// ClassifyAllOpen handles POST /api/v1/orders/classify.
//
//	@Summary	Classify every OPEN order
//	@Tags	Orders
//	@ID	classifyAllOpen
//	@Produce	json
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/classify [post]
func (s *Server) ClassifyAllOpen(c echo.Context) error {
	result, err := s.handlers.ClassifyAllOpen.Handle(c.Request().Context(), commands.NewClassifyAllOpenCommand())
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "open orders classified", map[string]int{
		"classified": result.Classified,
		"skipped":    result.Skipped,
		"failed":     result.Failed,
	})
}

// RequestCalculation handles POST /api/v1/orders/calculation/request.
// An empty selection requests every eligible order.
//
//	@Summary	Request the pallet calculation
//	@Tags	Calculation
//	@ID	requestCalculation
//	@Accept	json
//	@Produce	json
//	@Param	body	body	OrderSelectionRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/calculation/request [post]
func (s *Server) RequestCalculation(c echo.Context) error {
	return handleSelection(s, c, false, commands.NewRequestCalculationCommand, s.handlers.RequestCalculation, "calculation requested")
}

// CompleteCalculation handles POST /api/v1/orders/calculation/complete.
//
//	@Summary	Complete the pallet calculation
//	@Tags	Calculation
//	@ID	completeCalculation
//	@Accept	json
//	@Produce	json
//	@Param	body	body	OrderSelectionRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/calculation/complete [post]
func (s *Server) CompleteCalculation(c echo.Context) error {
	return handleSelection(s, c, false, commands.NewCompleteCalculationCommand, s.handlers.CompleteCalculation, "calculation completed")
}

// ExecuteFullCalculation handles POST /api/v1/orders/calculation/full.
//
//	@Summary	Request and complete the calculation at once
//	@Tags	Calculation
//	@ID	executeFullCalculation
//	@Accept	json
//	@Produce	json
//	@Param	body	body	OrderSelectionRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/calculation/full [post]
func (s *Server) ExecuteFullCalculation(c echo.Context) error {
	ids, err := bindSelection(c, false)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewExecuteFullCalculationCommand(ids)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.ExecuteFullCalculation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "calculation executed", map[string]int{
		"requested":  result.Requested,
		"calculated": result.Calculated,
	})
}

// PlanParcel handles POST /api/v1/orders/plan/parcel.
//
//	@Summary	Plan parcel orders
//	@Tags	Planning
//	@ID	planParcel
//	@Accept	json
//	@Produce	json
//	@Param	body	body	OrderSelectionRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/plan/parcel [post]
func (s *Server) PlanParcel(c echo.Context) error {
	return handleSelection(s, c, true, commands.NewPlanParcelCommand, s.handlers.PlanParcel, "parcels planned")
}

// PlanDirect handles POST /api/v1/orders/plan/direct.
//
//	@Summary	Plan direct orders
//	@Tags	Planning
//	@ID	planDirect
//	@Accept	json
//	@Produce	json
//	@Param	body	body	OrderSelectionRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/plan/direct [post]
func (s *Server) PlanDirect(c echo.Context) error {
	return handleSelection(s, c, true, commands.NewPlanDirectCommand, s.handlers.PlanDirect, "direct shipments planned")
}

// UnplanOrders handles POST /api/v1/orders/unplan.
//
//	@Summary	Take orders back to CALCULATED
//	@Tags	Planning
//	@ID	unplanOrders
//	@Accept	json
//	@Produce	json
//	@Param	body	body	OrderSelectionRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/unplan [post]
func (s *Server) UnplanOrders(c echo.Context) error {
	return handleSelection(s, c, true, commands.NewUnplanOrdersCommand, s.handlers.UnplanOrders, "orders unplanned")
}

// ReleaseOrders handles POST /api/v1/orders/release.
//
//	@Summary	Release held orders
//	@Tags	Orders
//	@ID	releaseOrders
//	@Accept	json
//	@Produce	json
//	@Param	body	body	OrderSelectionRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/release [post]
func (s *Server) ReleaseOrders(c echo.Context) error {
	return handleSelection(s, c, true, commands.NewReleaseOrdersCommand, s.handlers.ReleaseOrders, "orders released")
}

// RemixOrders handles POST /api/v1/orders/remix and returns the remix group.
//
//	@Summary	Recalculate selected orders as one consolidation
//	@Tags	Planning
//	@ID	remixOrders
//	@Accept	json
//	@Produce	json
//	@Param	body	body	OrderSelectionRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/remix [post]
func (s *Server) RemixOrders(c echo.Context) error {
	ids, err := bindSelection(c, true)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewRemixOrdersCommand(ids)
	if err != nil {
		return s.fail(c, err)
	}

	groupID, err := s.handlers.RemixOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "orders remixed", map[string]string{"groupId": groupID.String()})
}

// HoldOrders handles POST /api/v1/orders/hold.
//
//	@Summary	Put orders on hold
//	@Tags	Orders
//	@ID	holdOrders
//	@Accept	json
//	@Produce	json
//	@Param	body	body	HoldOrdersRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/hold [post]
func (s *Server) HoldOrders(c echo.Context) error {
	var req HoldOrdersRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err := ValidateHoldOrdersRequest(req); err != nil {
		return s.fail(c, err)
	}

	ids, err := parseIDs(req.OrderIDs)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewHoldOrdersCommand(ids, req.Reason)
	if err != nil {
		return s.fail(c, err)
	}

	count, err := s.handlers.HoldOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "orders held", map[string]int{"count": count})
}

// AdvanceBooking handles POST /api/v1/orders/booking.
//
//	@Summary	Advance the booking workflow
//	@Tags	Booking
//	@ID	advanceBooking
//	@Accept	json
//	@Produce	json
//	@Param	body	body	AdvanceBookingRequest	true	"Request body"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/booking [post]
func (s *Server) AdvanceBooking(c echo.Context) error {
	var req AdvanceBookingRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err := ValidateAdvanceBookingRequest(req); err != nil {
		return s.fail(c, err)
	}

	ids, err := parseIDs(req.OrderIDs)
	if err != nil {
		return s.fail(c, err)
	}
	action, err := commands.ParseBookingAction(req.Action)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewAdvanceBookingCommand(ids, action)
	if err != nil {
		return s.fail(c, err)
	}

	count, err := s.handlers.AdvanceBooking.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "booking advanced", map[string]int{"count": count})
}

// GetUnplannedOrders handles GET /api/v1/orders/unplanned?shipDate=YYYY-MM-DD.
//
//	@Summary	List orders that are not planned yet
//	@Tags	Orders
//	@ID	getUnplannedOrders
//	@Produce	json
//	@Param	shipDate	query	string	false	"Only this ship date"	Format(date)
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/orders/unplanned [get]
func (s *Server) GetUnplannedOrders(c echo.Context) error {
	shipDate, err := bindDateQuery(c, "shipDate")
	if err != nil {
		return s.fail(c, err)
	}

	rows, err := s.handlers.UnplannedOrders.Handle(c.Request().Context(), queries.NewGetUnplannedOrdersQuery(shipDate))
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "", unplannedResponse(rows))
}

// GetEntityEvents handles GET /api/v1/events/:id.
//
//	@Summary	Audit trail of an order, group, truck or lane
//	@Tags	Events
//	@ID	getEntityEvents
//	@Produce	json
//	@Param	id	path	string	true	"Entity ID"
//	@Success	200	{object}	Response
//	@Failure	400	{object}	Response
//	@Failure	404	{object}	Response
//	@Failure	409	{object}	Response
//	@Failure	500	{object}	Response
//	@Router	/events/{id} [get]
func (s *Server) GetEntityEvents(c echo.Context) error {
	entityID, err := parseID("entity id", c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetEntityEventsQuery(entityID)
	if err != nil {
		return s.fail(c, err)
	}

	events, err := s.handlers.EntityEvents.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, "", eventsResponse(events))
}

func bindSelection(c echo.Context, required bool) ([]kernel.UUID, error) {
	var req OrderSelectionRequest
	if err := c.Bind(&req); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	validate := ValidateOptionalOrderSelectionRequest
	if required {
		validate = ValidateOrderSelectionRequest
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	return parseIDs(req.OrderIDs)
}

// handleSelection runs a batch command over the selected orders and reports
// how many of them changed.
func handleSelection[C any](
	s *Server,
	c echo.Context,
	required bool,
	build func([]kernel.UUID) (C, error),
	handler Handler[C, int],
	message string,
) error {
	ids, err := bindSelection(c, required)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := build(ids)
	if err != nil {
		return s.fail(c, err)
	}

	count, err := handler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return ok(c, http.StatusOK, message, map[string]int{"count": count})
}
