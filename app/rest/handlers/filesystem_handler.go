package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"confidios-proxy/app/port"
	custommw "confidios-proxy/app/rest/middleware"
)

// FilesystemHandler handles proxied Confidios filesystem requests
type FilesystemHandler struct {
	filesystem port.FilesystemUsecase
	logger     *slog.Logger
}

// NewFilesystemHandler creates a new filesystem handler
func NewFilesystemHandler(filesystem port.FilesystemUsecase, logger *slog.Logger) *FilesystemHandler {
	return &FilesystemHandler{
		filesystem: filesystem,
		logger:     logger,
	}
}

// pathRequest carries the remote path for ls, cat and mkdir
type pathRequest struct {
	Path string `json:"path" validate:"required"`
}

// ListFiles lists a remote directory
// @Summary List a Confidios directory
// @Tags filesystem
// @Accept json
// @Produce json
// @Param request body pathRequest true "Directory path"
// @Success 200 {object} FileListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/ls [post]
func (h *FilesystemHandler) ListFiles(c echo.Context) error {
	ctx := c.Request().Context()
	user := custommw.CurrentUser(c)

	var req pathRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Path == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "path is required"})
	}

	files, err := h.filesystem.ListFiles(ctx, user.ID, req.Path)
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, FileListResponse{Status: "success", Files: files})
}

// ReadFile reads a remote file
// @Summary Read a Confidios file
// @Tags filesystem
// @Accept json
// @Produce json
// @Param request body pathRequest true "File path"
// @Success 200 {object} FileContentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/cat [post]
func (h *FilesystemHandler) ReadFile(c echo.Context) error {
	ctx := c.Request().Context()
	user := custommw.CurrentUser(c)

	var req pathRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Path == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "path is required"})
	}

	content, err := h.filesystem.ReadFile(ctx, user.ID, req.Path)
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, FileContentResponse{Status: "success", Content: content})
}

// MakeDirectory creates a remote directory
// @Summary Create a Confidios directory
// @Tags filesystem
// @Accept json
// @Produce json
// @Param request body pathRequest true "Directory path"
// @Success 201 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/mkdir [post]
func (h *FilesystemHandler) MakeDirectory(c echo.Context) error {
	ctx := c.Request().Context()
	user := custommw.CurrentUser(c)

	var req pathRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Path == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "path is required"})
	}

	balance, err := h.filesystem.MakeDirectory(ctx, user.ID, req.Path)
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	h.logger.Info("directory created", "user_id", user.ID, "path", req.Path)
	return c.JSON(http.StatusCreated, BalanceResponse{Status: "success", Balance: balance})
}
