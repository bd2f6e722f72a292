package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type listOrdersQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=pending approved rejected completed"`
	Search string `query:"search"`
	Sort   string `query:"sort"   validate:"omitempty,oneof=created_at updated_at status created_by"`
	Order  string `query:"order"  validate:"omitempty,oneof=asc desc"`
}

type listOrdersResponse struct {
	Data  []domain.OrderView `json:"data"`
	Total int                `json:"total"`
}

// List handles GET /v1/orders. Orders are newest first unless order=asc.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "pending, approved, rejected or completed"
// @Param        search  query     string  false  "Matches product name, author or notes"
// @Param        sort    query     string  false  "created_at, updated_at, status or created_by"
// @Param        order   query     string  false  "asc or desc"
// @Success      200     {object}  listOrdersResponse
// @Failure      403     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	var q listOrdersQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	views, err := h.orders.List(c.Request().Context(), ports.OrderQuery{
		Status: domain.OrderStatus(q.Status),
		Search: q.Search,
		SortBy: ports.OrderSortField(q.Sort),
		Asc:    q.Order == "asc",
	})
	if err != nil {
		return err
	}
	if views == nil {
		views = []domain.OrderView{}
	}
	return c.JSON(http.StatusOK, listOrdersResponse{Data: views, Total: len(views)})
}
