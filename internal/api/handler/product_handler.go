package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/slooze/commodities-admin/internal/api/metrics"
	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	catalog ports.CatalogStore
}

func NewProductHandler(catalog ports.CatalogStore) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List handles GET /v1/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        search    query     string  false  "Case-insensitive name filter"
// @Param        category  query     string  false  "Exact category"
// @Param        sort      query     string  false  "name, category, price, stock or last_updated"
// @Param        order     query     string  false  "asc or desc"
// @Success      200       {object}  listProductsResponse
// @Failure      401       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	var q listProductsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	products := h.catalog.Query(q.toPort())
	return c.JSON(http.StatusOK, listProductsResponse{Data: products, Total: len(products)})
}

// Categories handles GET /v1/products/categories.
//
// @Summary      List product categories
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  categoriesResponse
// @Router       /v1/products/categories [get]
func (h *ProductHandler) Categories(c echo.Context) error {
	categories := h.catalog.Categories()
	if categories == nil {
		categories = []string{}
	}
	return c.JSON(http.StatusOK, categoriesResponse{Data: categories})
}

// Get handles GET /v1/products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	p, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		return domain.ErrProductNotFound
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /v1/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	req, err := bindProduct(c)
	if err != nil {
		return err
	}

	p := h.catalog.Create(req.draft())
	metrics.CatalogMutationsTotal.WithLabelValues("create", "ok").Inc()
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /v1/products/:id.
//
// @Summary      Replace a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product fields"
// @Success      200   {object}  domain.Product
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	req, err := bindProduct(c)
	if err != nil {
		return err
	}

	d := req.draft()
	updated, err := h.catalog.Update(domain.Product{
		ID:          c.Param("id"),
		Name:        d.Name,
		Category:    d.Category,
		Price:       d.Price,
		Stock:       d.Stock,
		Description: d.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.CatalogMutationsTotal.WithLabelValues("update", "not_found").Inc()
		}
		return err
	}
	metrics.CatalogMutationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/products/:id. Deleting an unknown id succeeds.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id   path  string  true  "Product id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Router       /v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	h.catalog.Delete(c.Param("id"))
	metrics.CatalogMutationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}

func bindProduct(c echo.Context) (productRequest, error) {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return req, nil
}
