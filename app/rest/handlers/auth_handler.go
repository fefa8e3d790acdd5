package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"confidios-proxy/app/port"
	custommw "confidios-proxy/app/rest/middleware"
)

// AuthHandler handles Confidios session HTTP requests
type AuthHandler struct {
	sessions port.SessionUsecase
	logger   *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions port.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// userLoginRequest carries the caller's Confidios password
type userLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AdminLogin opens a Confidios session as the configured admin identity.
// The admin password comes from configuration, never from the request.
// @Summary Admin login to Confidios
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/auths/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	ctx := c.Request().Context()
	user := custommw.CurrentUser(c)

	h.logger.Info("admin login requested", "user_id", user.ID, "ip", c.RealIP())

	view, err := h.sessions.Login(ctx, user, "")
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, sessionResponse(view, "success"))
}

// AdminLogout closes the admin's Confidios session
// @Summary Admin logout from Confidios
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/auths/logout [post]
func (h *AuthHandler) AdminLogout(c echo.Context) error {
	return h.logout(c)
}

// UserLogin opens a Confidios session with the caller's bound identity
// @Summary User login to Confidios
// @Tags auth
// @Accept json
// @Produce json
// @Param request body userLoginRequest true "Confidios password"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/auths/user/login [post]
func (h *AuthHandler) UserLogin(c echo.Context) error {
	ctx := c.Request().Context()
	user := custommw.CurrentUser(c)

	var req userLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Password == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "password is required"})
	}

	h.logger.Info("user login requested", "user_id", user.ID, "ip", c.RealIP())

	view, err := h.sessions.Login(ctx, user, req.Password)
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, sessionResponse(view, "success"))
}

// UserLogout closes the caller's Confidios session
// @Summary User logout from Confidios
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/auths/user/logout [post]
func (h *AuthHandler) UserLogout(c echo.Context) error {
	return h.logout(c)
}

// Status reports the caller's Confidios session state
// @Summary Confidios session status
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/status [get]
func (h *AuthHandler) Status(c echo.Context) error {
	ctx := c.Request().Context()
	user := custommw.CurrentUser(c)

	view, err := h.sessions.ResolveActiveSession(ctx, user.ID)
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, sessionResponse(view, ""))
}

// logout is shared by the admin and user logout routes; the semantics
// are identical once the caller is known.
func (h *AuthHandler) logout(c echo.Context) error {
	ctx := c.Request().Context()
	user := custommw.CurrentUser(c)

	if err := h.sessions.Logout(ctx, user.ID); err != nil {
		return writeDomainError(c, h.logger, err)
	}

	h.logger.Info("logout completed", "user_id", user.ID)
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
