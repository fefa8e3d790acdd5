package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"confidios-proxy/app/domain"
	"confidios-proxy/app/port"
)

// IdentityVerifier resolves a caller credential to a local user by asking
// Kratos whose session it is. The credential is either the raw Cookie
// header of the incoming request or a bare session token.
type IdentityVerifier struct {
	client *Client
	logger *slog.Logger
}

// NewIdentityVerifier creates a Kratos-backed identity verifier
func NewIdentityVerifier(client *Client, logger *slog.Logger) port.IdentityVerifier {
	return &IdentityVerifier{
		client: client,
		logger: logger.With("component", "identity_verifier"),
	}
}

// VerifyCaller checks the credential against Kratos and returns the local user
func (v *IdentityVerifier) VerifyCaller(ctx context.Context, credential string) (*domain.LocalUser, error) {
	if credential == "" {
		return nil, domain.ErrUnauthenticated
	}

	req := v.client.PublicAPI().FrontendAPI.ToSession(ctx)
	if strings.Contains(credential, "=") {
		// Cookie-shaped credentials are forwarded verbatim
		req = req.Cookie(credential)
	} else {
		req = req.XSessionToken(credential)
	}

	session, httpResp, err := req.Execute()
	if err != nil {
		if httpResp != nil && (httpResp.StatusCode == http.StatusUnauthorized || httpResp.StatusCode == http.StatusForbidden) {
			return nil, domain.ErrUnauthenticated
		}
		v.logger.Error("session verification failed", "error", err)
		return nil, fmt.Errorf("failed to verify session: %w", err)
	}

	if session.Active == nil || !*session.Active || session.Identity == nil {
		return nil, domain.ErrUnauthenticated
	}

	user := &domain.LocalUser{
		ID:   session.Identity.Id,
		Role: domain.UserRoleUser,
	}

	if traits, ok := session.Identity.Traits.(map[string]interface{}); ok {
		if email, ok := traits["email"].(string); ok {
			user.Email = email
		}
		if name, ok := traits["name"].(string); ok {
			user.Name = name
		}
	}
	if role := extractRole(session.Identity.MetadataPublic); role != "" {
		user.Role = role
	}

	return user, nil
}

// extractRole pulls the platform role out of the identity's public metadata
func extractRole(metadata interface{}) domain.UserRole {
	meta, ok := metadata.(map[string]interface{})
	if !ok {
		return ""
	}

	raw, ok := meta["role"].(string)
	if !ok {
		return ""
	}

	switch domain.UserRole(raw) {
	case domain.UserRoleAdmin, domain.UserRoleUser, domain.UserRolePending:
		return domain.UserRole(raw)
	default:
		return ""
	}
}
