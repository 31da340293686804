package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/api/metrics"
	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/ports"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type productRequest struct {
	Name      string  `json:"name" validate:"required"`
	Brand     string  `json:"brand" validate:"required"`
	Category  string  `json:"category" validate:"required,oneof=FOOD TOOL SCHOOL PHARMACY TECHNOLOGY"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Stock     int     `json:"stock" validate:"gte=0"`
}

func (r productRequest) toInput() ports.ProductInput {
	return ports.ProductInput{
		Name:      r.Name,
		Brand:     r.Brand,
		Category:  domain.Category(r.Category),
		UnitPrice: r.UnitPrice,
		Stock:     r.Stock,
	}
}

// updateProductRequest carries a partial update: every field is optional and
// an omitted field keeps the stored value.
type updateProductRequest struct {
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Category  string   `json:"category" validate:"omitempty,oneof=FOOD TOOL SCHOOL PHARMACY TECHNOLOGY"`
	UnitPrice *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	Stock     *int     `json:"stock" validate:"omitempty,gte=0"`
}

func (r updateProductRequest) toInput() ports.UpdateProductInput {
	return ports.UpdateProductInput{
		Name:      r.Name,
		Brand:     r.Brand,
		Category:  domain.Category(r.Category),
		UnitPrice: r.UnitPrice,
		Stock:     r.Stock,
	}
}

// Create adds a product to the catalog. The category gate has already
// checked the body category against the caller's role by the time this runs.
//
// @Summary      Create a product
// @Tags         product
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /product/post [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	metrics.ProductsCreatedTotal.WithLabelValues(string(product.Category)).Inc()

	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) FindAll(c echo.Context) error {
	products, err := h.productService.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) FindByName(c echo.Context) error {
	products, err := h.productService.FindByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) FindByCategory(c echo.Context) error {
	products, err := h.productService.FindByCategory(c.Request().Context(), domain.Category(c.QueryParam("category")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) FindByID(c echo.Context) error {
	product, err := h.productService.FindByID(c.Request().Context(), c.QueryParam("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update partially updates the product addressed by the id query parameter.
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Update(c.Request().Context(), c.QueryParam("id"), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.Delete(c.Request().Context(), c.QueryParam("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
