package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"confidios-proxy/app/config"
	"confidios-proxy/app/domain"
	"confidios-proxy/app/port"
)

// sessionHeader carries the caller's Confidios credentials on proxied
// requests, JSON-encoded into the X-Confidios-Session-Id header.
const sessionHeaderName = "X-Confidios-Session-Id"

type sessionHeader struct {
	Username  string `json:"u"`
	SessionID string `json:"sid"`
}

// ConfidiosGateway implements port.ConfidiosGateway over the Confidios
// HTTP API. It is an anti-corruption layer: every remote status code and
// body shape is translated into domain values by one shared mapping, so
// no Confidios wire detail leaks past this package.
type ConfidiosGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewConfidiosGateway creates a new ConfidiosGateway instance
func NewConfidiosGateway(cfg *config.Config, logger *slog.Logger) port.ConfidiosGateway {
	return &ConfidiosGateway{
		baseURL: strings.TrimRight(cfg.ConfidiosBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.ConfidiosTimeout,
		},
		logger: logger.With("component", "confidios_gateway"),
	}
}

// Login authenticates a Confidios identity and returns the issued session
func (g *ConfidiosGateway) Login(ctx context.Context, identity, password string) (*domain.ConfidiosSession, error) {
	body := map[string]string{"identity": identity, "password": password}

	var resp struct {
		Username  string      `json:"u"`
		SessionID string      `json:"sid"`
		Balance   json.Number `json:"balance"`
	}
	if err := g.call(ctx, "login", "/login", body, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Username == "" || resp.SessionID == "" {
		return nil, fmt.Errorf("login response missing session fields: %w", domain.ErrInvalidRemoteResponse)
	}

	g.logger.Info("confidios login succeeded", "identity", identity)

	return &domain.ConfidiosSession{
		Username:  resp.Username,
		SessionID: resp.SessionID,
		Balance:   resp.Balance.String(),
	}, nil
}

// Logout revokes the remote session
func (g *ConfidiosGateway) Logout(ctx context.Context, view *domain.SessionView) error {
	if err := g.call(ctx, "logout", "/logout", nil, view, nil); err != nil {
		return err
	}

	g.logger.Info("confidios logout succeeded", "identity", view.ConfidiosUsername)
	return nil
}

// ListFiles lists a remote directory, passing entries through opaque
func (g *ConfidiosGateway) ListFiles(ctx context.Context, view *domain.SessionView, path string) ([]json.RawMessage, error) {
	body := map[string]string{"path": path}

	var resp struct {
		FileList []json.RawMessage `json:"filelist"`
	}
	if err := g.call(ctx, "ls", "/ls", body, view, &resp); err != nil {
		return nil, err
	}

	return resp.FileList, nil
}

// ReadFile reads a remote file and the balance reported with it
func (g *ConfidiosGateway) ReadFile(ctx context.Context, view *domain.SessionView, path string) (*domain.FileContent, error) {
	body := map[string]string{"path": path}

	var resp struct {
		Balance json.Number     `json:"balance"`
		Data    json.RawMessage `json:"data"`
	}
	if err := g.call(ctx, "cat", "/cat", body, view, &resp); err != nil {
		return nil, err
	}

	return &domain.FileContent{
		Balance: resp.Balance.String(),
		Data:    resp.Data,
	}, nil
}

// MakeDirectory creates a remote directory and returns the new balance
func (g *ConfidiosGateway) MakeDirectory(ctx context.Context, view *domain.SessionView, path string) (string, error) {
	body := map[string]string{"path": path}

	var resp struct {
		Balance json.Number `json:"balance"`
	}
	if err := g.call(ctx, "mkdir", "/mkdir", body, view, &resp); err != nil {
		return "", err
	}

	return resp.Balance.String(), nil
}

// CreateIdentity provisions a new Confidios identity
func (g *ConfidiosGateway) CreateIdentity(ctx context.Context, identity, password string) (*domain.ConfidiosSession, error) {
	body := map[string]string{"identity": identity, "password": password}

	var resp struct {
		Username string      `json:"u"`
		Balance  json.Number `json:"balance"`
	}
	if err := g.call(ctx, "creat/user", "/creat/user", body, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Username == "" {
		return nil, fmt.Errorf("create identity response missing username: %w", domain.ErrInvalidRemoteResponse)
	}

	g.logger.Info("confidios identity created", "identity", resp.Username)

	return &domain.ConfidiosSession{
		Username: resp.Username,
		Balance:  resp.Balance.String(),
	}, nil
}

// call performs one Confidios request and maps the outcome into domain
// terms. Every operation goes through here, so the translation rules are
// written exactly once:
//
//	transport failure          -> ErrRemoteUnreachable
//	2xx, body decodes          -> out populated
//	2xx, body malformed        -> ErrInvalidRemoteResponse
//	401                        -> ErrRemoteAuthRejected
//	403                        -> ErrRemoteAccessDenied
//	other non-2xx              -> *RemoteError{Op, StatusCode, Detail}
func (g *ConfidiosGateway) call(ctx context.Context, op, path string, body interface{}, view *domain.SessionView, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if view != nil {
		header, err := json.Marshal(sessionHeader{
			Username:  view.ConfidiosUsername,
			SessionID: view.SessionID,
		})
		if err != nil {
			return fmt.Errorf("failed to encode session header: %w", err)
		}
		req.Header.Set(sessionHeaderName, string(header))
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error("confidios request failed", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, domain.ErrRemoteUnreachable)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		g.logger.Error("failed to read confidios response", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, domain.ErrRemoteUnreachable)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(payload, out); err != nil {
			g.logger.Error("malformed confidios response",
				"op", op,
				"status", resp.StatusCode,
				"error", err)
			return fmt.Errorf("%s: %w", op, domain.ErrInvalidRemoteResponse)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", op, domain.ErrRemoteAuthRejected)

	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", op, domain.ErrRemoteAccessDenied)

	default:
		remoteErr := &domain.RemoteError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(payload),
		}
		g.logger.Error("confidios returned error status",
			"op", op,
			"status", resp.StatusCode,
			"detail", remoteErr.Detail)
		return remoteErr
	}
}

// extractDetail pulls the human-readable message out of a Confidios error
// body, which carries it in a "detail" field when present.
func extractDetail(payload []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Detail
}
