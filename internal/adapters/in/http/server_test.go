package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorJSON_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"product unavailable", commands.ErrProductNotAvailable, http.StatusUnprocessableEntity},
		{"insufficient stock", commands.ErrInsufficientStock, http.StatusUnprocessableEntity},
		{"invalid operation", errs.NewInvalidOperationError("cancel order"), http.StatusConflict},
		{"value required", errs.NewValueIsRequiredError("carrier"), http.StatusBadRequest},
		{"value invalid", errs.NewValueIsInvalidError("email"), http.StatusBadRequest},
		{"nothing to update", commands.ErrNothingToUpdate, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			err := errorJSON(ctx, tt.err)
			require.NoError(t, err)
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message"`)
		})
	}
}

func TestBadRequestJSON(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	err := badRequestJSON(ctx, "Invalid request body")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestRegisterRoutes_ExposesLookupAndCatalogRoutes(t *testing.T) {
	e := echo.New()
	s := NewServer(
		commands.CreateOrderCommandHandler{},
		commands.UpdateOrderCommandHandler{},
		commands.UpdateOrderStatusCommandHandler{},
		commands.CancelOrderCommandHandler{},
		commands.CreatePaymentCommandHandler{},
		commands.UpdatePaymentStatusCommandHandler{},
		commands.CreateShipmentCommandHandler{},
		commands.UpdateShipmentCommandHandler{},
		commands.CreateProductCommandHandler{},
		commands.UpdateProductCommandHandler{},
		queries.GetOpenOrdersQueryHandler{},
		queries.GetActiveShipmentsQueryHandler{},
		queries.GetOrderByNumberQueryHandler{},
		queries.GetShipmentByTrackingNumberQueryHandler{},
	)
	s.RegisterRoutes(e)

	registered := make(map[string]bool, len(e.Routes()))
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	assert.True(t, registered["GET /api/v1/orders/number/:orderNumber"])
	assert.True(t, registered["GET /api/v1/shipments/tracking/:trackingNumber"])
	assert.True(t, registered["POST /api/v1/products"])
	assert.True(t, registered["PATCH /api/v1/products/:id"])
}
