// Package http exposes the fulfillment use cases over a JSON API.
// Handlers bind and validate the request, build a command or query, and
// delegate to the application layer; domain errors are translated to HTTP
// status codes in one place.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderHandler         commands.UpdateOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	createPaymentHandler       commands.CreatePaymentCommandHandler
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler
	createShipmentHandler      commands.CreateShipmentCommandHandler
	updateShipmentHandler      commands.UpdateShipmentCommandHandler
	createProductHandler       commands.CreateProductCommandHandler
	updateProductHandler       commands.UpdateProductCommandHandler

	// Query handlers
	getOpenOrdersHandler         queries.GetOpenOrdersQueryHandler
	getActiveShipmentsHandler    queries.GetActiveShipmentsQueryHandler
	getOrderByNumberHandler      queries.GetOrderByNumberQueryHandler
	getShipmentByTrackingHandler queries.GetShipmentByTrackingNumberQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createPaymentHandler commands.CreatePaymentCommandHandler,
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getActiveShipmentsHandler queries.GetActiveShipmentsQueryHandler,
	getOrderByNumberHandler queries.GetOrderByNumberQueryHandler,
	getShipmentByTrackingHandler queries.GetShipmentByTrackingNumberQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		cancelOrderHandler:         cancelOrderHandler,
		createPaymentHandler:       createPaymentHandler,
		updatePaymentStatusHandler: updatePaymentStatusHandler,
		createShipmentHandler:      createShipmentHandler,
		updateShipmentHandler:      updateShipmentHandler,
		createProductHandler:       createProductHandler,
		updateProductHandler:       updateProductHandler,

		getOpenOrdersHandler:         getOpenOrdersHandler,
		getActiveShipmentsHandler:    getActiveShipmentsHandler,
		getOrderByNumberHandler:      getOrderByNumberHandler,
		getShipmentByTrackingHandler: getShipmentByTrackingHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/open", s.GetOpenOrders)
	api.GET("/orders/number/:orderNumber", s.GetOrderByNumber)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/payments", s.CreatePayment)
	api.PUT("/payments/:id/status", s.UpdatePaymentStatus)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/active", s.GetActiveShipments)
	api.GET("/shipments/tracking/:trackingNumber", s.GetShipmentByTrackingNumber)
	api.PATCH("/shipments/:id", s.UpdateShipment)

	api.POST("/products", s.CreateProduct)
	api.PATCH("/products/:id", s.UpdateProduct)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorJSON maps a use case error onto an HTTP status code.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrProductNotAvailable),
		errors.Is(err, commands.ErrInsufficientStock):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidOperation):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNothingToUpdate),
		errors.Is(err, commands.ErrOrderLinesAreRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

// badRequestJSON reports a malformed request body or path parameter.
func badRequestJSON(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
