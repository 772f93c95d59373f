package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// CreateShipment handles POST /api/v1/shipments - registers a new shipment.
// A blank tracking number means one will be generated.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id")
	}

	origin, err := kernel.NewAddress(
		req.OriginAddress.Line1, req.OriginAddress.Line2, req.OriginAddress.City,
		req.OriginAddress.State, req.OriginAddress.PostalCode, req.OriginAddress.Country)
	if err != nil {
		return errorJSON(ctx, err)
	}

	destination, err := kernel.NewAddress(
		req.DestinationAddress.Line1, req.DestinationAddress.Line2, req.DestinationAddress.City,
		req.DestinationAddress.State, req.DestinationAddress.PostalCode, req.DestinationAddress.Country)
	if err != nil {
		return errorJSON(ctx, err)
	}

	weightUnit, err := kernel.ParseWeightUnit(req.Weight.Unit)
	if err != nil {
		return errorJSON(ctx, err)
	}
	weight, err := kernel.NewWeight(req.Weight.Value, weightUnit)
	if err != nil {
		return errorJSON(ctx, err)
	}

	dimensionUnit, err := kernel.ParseDimensionUnit(req.Dimensions.Unit)
	if err != nil {
		return errorJSON(ctx, err)
	}
	dimensions, err := kernel.NewDimensions(
		req.Dimensions.Length, req.Dimensions.Width, req.Dimensions.Height, dimensionUnit)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cost, err := kernel.NewMoney(req.ShippingCost, req.Currency)
	if err != nil {
		return errorJSON(ctx, err)
	}

	lines := make([]commands.ShipmentLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		orderDetailID, lineErr := kernel.UUIDFromString(line.OrderDetailID)
		if lineErr != nil {
			return errorJSON(ctx, lineErr)
		}
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return errorJSON(ctx, lineErr)
		}
		lines = append(lines, commands.ShipmentLine{
			OrderDetailID: orderDetailID,
			ProductID:     productID,
			ProductName:   line.ProductName,
			Sku:           line.Sku,
			Quantity:      line.Quantity,
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), orderID, req.Carrier, req.TrackingNumber,
		origin, destination, weight, dimensions, cost,
		req.EstimatedDeliveryDate, req.CreatedBy, lines)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentToResponse(created))
}

// UpdateShipment handles PATCH /api/v1/shipments/:id - updates carrier details,
// the delivery estimate, the status, or appends a tracking entry.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid shipment id")
	}

	var req UpdateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	var newStatus *shipment.Status
	if req.Status != nil {
		parsed, statusErr := shipment.StatusFromString(*req.Status)
		if statusErr != nil {
			return errorJSON(ctx, statusErr)
		}
		newStatus = &parsed
	}

	cmd, err := commands.NewUpdateShipmentCommand(
		shipmentID, req.Carrier, req.TrackingNumber,
		req.EstimatedDeliveryDate, req.UpdateEstimate,
		newStatus, req.Location, req.Notes, req.ModifiedBy)
	if err != nil {
		return errorJSON(ctx, err)
	}

	updated, err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentToResponse(updated))
}

// GetActiveShipments handles GET /api/v1/shipments/active - lists shipments in flight.
func (s *Server) GetActiveShipments(ctx echo.Context) error {
	query := queries.NewGetActiveShipmentsQuery()

	shipments, err := s.getActiveShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ActiveShipmentResponse, len(shipments))
	for i, row := range shipments {
		response[i] = ActiveShipmentResponse{
			ID:                    row.ID.String(),
			OrderID:               row.OrderID.String(),
			Carrier:               row.Carrier,
			TrackingNumber:        row.TrackingNumber,
			Status:                row.Status.String(),
			EstimatedDeliveryDate: row.EstimatedDeliveryDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentByTrackingNumber handles GET /api/v1/shipments/tracking/:trackingNumber -
// looks a shipment up by its carrier tracking number.
func (s *Server) GetShipmentByTrackingNumber(ctx echo.Context) error {
	trackingNumber, err := kernel.NewTrackingNumber(ctx.Param("trackingNumber"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetShipmentByTrackingNumberQuery(trackingNumber)
	if err != nil {
		return errorJSON(ctx, err)
	}

	found, err := s.getShipmentByTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentToResponse(found))
}
