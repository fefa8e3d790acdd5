package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"confidios-proxy/app/domain"
	"confidios-proxy/app/port"
	custommw "confidios-proxy/app/rest/middleware"
)

// UserHandler handles Confidios identity provisioning requests
type UserHandler struct {
	users  port.UserUsecase
	logger *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users port.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// CreateUser provisions a Confidios identity for a local user
// @Summary Provision a Confidios identity
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.ProvisionRequest true "User to provision"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/users/create [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.ProvisionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	h.logger.Info("provisioning requested",
		"user_id", req.UserID,
		"requested_by", custommw.CurrentUser(c).ID)

	binding, err := h.users.CreateUser(ctx, &req)
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"status": "success",
		"user":   binding,
	})
}

// ListUsers returns all bindings with local display attributes
// @Summary List provisioned users
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1/users/list [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	bindings, err := h.users.ListUsers(ctx)
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "success",
		"users":  bindings,
	})
}

// Me returns the caller's own binding
// @Summary Caller's Confidios binding
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	user := custommw.CurrentUser(c)

	binding, err := h.users.GetBinding(ctx, user.ID)
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "success",
		"user":   binding,
	})
}
