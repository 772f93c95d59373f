package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateProduct handles POST /api/v1/products - adds a product to the catalog.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(req.Price, req.Currency)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), req.Name, req.Sku, req.Description, price, req.StockQuantity)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToResponse(created))
}

// UpdateProduct handles PATCH /api/v1/products/:id - restocks, corrects stock
// or toggles whether the product is on sale.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid product id")
	}

	var req UpdateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(productID, req.StockAdjustment, req.IsActive)
	if err != nil {
		return errorJSON(ctx, err)
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToResponse(updated))
}
