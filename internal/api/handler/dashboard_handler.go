package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/slooze/commodities-admin/internal/core/ports"
)

type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary handles GET /v1/dashboard.
//
// @Summary      Catalog summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Summary
// @Failure      403  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Summary())
}
