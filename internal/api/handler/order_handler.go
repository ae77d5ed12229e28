package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/babycare/store-api/internal/core/domain"
	"github.com/babycare/store-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create inserts the request body verbatim as a new order record. The status
// field is optional at creation time.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Order record (arbitrary fields)"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /api/order [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var doc domain.Document
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.Create(c.Request().Context(), doc)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{
		Success: true,
		Message: "Order created successfully!",
		Data:    result,
	})
}

// List returns every order.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dataResponse
// @Failure      500  {object}  statusResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Document{}
	}

	return c.JSON(http.StatusOK, dataResponse{
		Success: true,
		Message: "Orders retrieved successfully!",
		Data:    orders,
	})
}

// UpdateStatus overwrites the status of the order named in the path. An id
// matching no order still succeeds; callers inspect the counts in data.
//
// @Summary      Update an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderId  path      string               true  "Order ObjectID hex"
// @Param        body     body      statusUpdateRequest  true  "New status"
// @Success      200      {object}  dataResponse
// @Failure      400      {object}  statusResponse
// @Failure      500      {object}  statusResponse
// @Router       /api/{orderId}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.UpdateStatus(c.Request().Context(), c.Param("orderId"), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{
		Success: true,
		Message: "Order status updated successfully",
		Data:    result,
	})
}
