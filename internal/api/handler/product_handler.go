package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/babycare/store-api/internal/core/domain"
	"github.com/babycare/store-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create inserts the request body verbatim as a new product record. The
// schema is open: no validation is applied to the document.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Product record (arbitrary fields)"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /api/product [post]
func (h *ProductHandler) Create(c echo.Context) error {
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
		Message: "Product created successfully!",
		Data:    result,
	})
}

// List returns every product in the catalog.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {object}  dataResponse
// @Failure      500  {object}  statusResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if products == nil {
		products = []domain.Document{}
	}

	return c.JSON(http.StatusOK, dataResponse{
		Success: true,
		Message: "Products retrieved successfully!",
		Data:    products,
	})
}

// Get returns a single product by id. A miss is still a success, with an
// explicit null payload.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ObjectID hex"
// @Success      200  {object}  dataResponse
// @Failure      500  {object}  statusResponse
// @Router       /api/product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{
		Success: true,
		Message: "Single product retrieved successfully!",
		Data:    product,
	})
}
