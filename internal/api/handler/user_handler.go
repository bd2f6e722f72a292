package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/slooze/commodities-admin/internal/core/domain"
	"github.com/slooze/commodities-admin/internal/core/ports"
)

type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type listUsersResponse struct {
	Data  []domain.Identity `json:"data"`
	Total int               `json:"total"`
}

// List handles GET /v1/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Case-insensitive name or email filter"
// @Success      200     {object}  listUsersResponse
// @Failure      403     {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.Identity{}
	}
	return c.JSON(http.StatusOK, listUsersResponse{Data: users, Total: len(users)})
}
