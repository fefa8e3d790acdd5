package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"confidios-proxy/app/domain"
	"confidios-proxy/app/utils/validator"
)

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Error string `json:"error"`
}

// SessionResponse is returned by login and status endpoints
type SessionResponse struct {
	Status             string `json:"status,omitempty"`
	ConfidiosUser      string `json:"confidios_user"`
	ConfidiosSessionID string `json:"confidios_session_id"`
	Balance            string `json:"balance"`
	IsLoggedIn         bool   `json:"is_logged_in"`
}

// FileListResponse is returned by the ls endpoint
type FileListResponse struct {
	Status string            `json:"status"`
	Files  []json.RawMessage `json:"files"`
}

// FileContentResponse is returned by the cat endpoint
type FileContentResponse struct {
	Status  string              `json:"status"`
	Content *domain.FileContent `json:"content"`
}

// BalanceResponse is returned by the mkdir endpoint
type BalanceResponse struct {
	Status  string `json:"status"`
	Balance string `json:"balance"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// HealthStatus describes the state of one dependency
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessResponse is returned by the readiness endpoint
type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Checks    map[string]HealthStatus `json:"checks"`
}

// writeDomainError translates a domain error into the HTTP response.
// Every handler funnels its failures through here so the API surfaces
// one consistent mapping.
func writeDomainError(c echo.Context, logger *slog.Logger, err error) error {
	var valErr *domain.ValidationError
	var fieldErrs *validator.ValidationError
	var remoteErr *domain.RemoteError

	switch {
	case errors.As(err, &valErr):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: valErr.Message})

	case errors.As(err, &fieldErrs):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: fieldErrs.Error()})

	case errors.Is(err, domain.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})

	case errors.Is(err, domain.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "insufficient privileges"})

	case errors.Is(err, domain.ErrNoActiveSession):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no active Confidios session"})

	case errors.Is(err, domain.ErrNotProvisioned):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no Confidios identity bound for user"})

	case errors.Is(err, domain.ErrBindingNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "confidios binding not found"})

	case errors.Is(err, domain.ErrBindingExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "confidios binding already exists"})

	case errors.Is(err, domain.ErrRemoteAuthRejected):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Confidios rejected the session credentials"})

	case errors.Is(err, domain.ErrRemoteAccessDenied):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Confidios denied access"})

	case errors.Is(err, domain.ErrRemoteUnreachable):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Could not connect to Confidios service"})

	case errors.Is(err, domain.ErrInvalidRemoteResponse):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "malformed Confidios response"})

	case errors.As(err, &remoteErr):
		message := remoteErr.Detail
		if message == "" {
			message = "Confidios request failed"
		}
		return c.JSON(remoteErr.StatusCode, ErrorResponse{Error: message})

	default:
		logger.Error("unhandled error", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// sessionResponse builds the uniform session payload
func sessionResponse(view *domain.SessionView, status string) SessionResponse {
	return SessionResponse{
		Status:             status,
		ConfidiosUser:      view.ConfidiosUsername,
		ConfidiosSessionID: view.SessionID,
		Balance:            view.Balance,
		IsLoggedIn:         true,
	}
}
