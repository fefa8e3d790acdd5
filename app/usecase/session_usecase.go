package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"confidios-proxy/app/domain"
	"confidios-proxy/app/port"
)

// SessionUsecase keeps three holders of session state in line: the
// Confidios service, the bindings table, and the in-process cache. Writes
// always land in the store before the cache, so a crash between the two
// only ever loses the accelerator, never the truth.
type SessionUsecase struct {
	bindings port.BindingRepository
	cache    port.SessionCache
	gateway  port.ConfidiosGateway

	adminUsername string
	adminPassword string
	// logoutTimeout bounds the best-effort remote logout call
	logoutTimeout time.Duration

	logger *slog.Logger
}

// NewSessionUsecase creates a new SessionUsecase instance
func NewSessionUsecase(
	bindings port.BindingRepository,
	cache port.SessionCache,
	gateway port.ConfidiosGateway,
	adminUsername string,
	adminPassword string,
	logoutTimeout time.Duration,
	logger *slog.Logger,
) *SessionUsecase {
	return &SessionUsecase{
		bindings:      bindings,
		cache:         cache,
		gateway:       gateway,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		logoutTimeout: logoutTimeout,
		logger:        logger.With("component", "session_usecase"),
	}
}

// Login opens a Confidios session for the user and records it locally.
// Admin callers always authenticate as the configured fixed identity;
// ordinary users authenticate with the username bound at provisioning
// time and the password they supplied.
func (u *SessionUsecase) Login(ctx context.Context, user *domain.LocalUser, password string) (*domain.SessionView, error) {
	identity, remotePassword, err := u.resolveCredentials(ctx, user, password)
	if err != nil {
		return nil, err
	}

	session, err := u.gateway.Login(ctx, identity, remotePassword)
	if err != nil {
		u.logger.Warn("confidios login failed", "user_id", user.ID, "identity", identity, "error", err)
		return nil, err
	}

	// Store first, cache second
	if err := u.bindings.SetSession(ctx, user.ID, session.SessionID, session.Balance); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	view := &domain.SessionView{
		ConfidiosUsername: session.Username,
		SessionID:         session.SessionID,
		Balance:           session.Balance,
	}
	u.cache.Put(user.ID, view)

	u.logger.Info("session opened", "user_id", user.ID, "identity", session.Username)
	return view, nil
}

// Logout clears the local session state and revokes the remote session on
// a best-effort basis. The remote call is bounded by a short timeout and
// its failure never blocks the local clear: a user must always be able to
// log out even when Confidios is down. Logging out with no active session
// is a no-op success.
func (u *SessionUsecase) Logout(ctx context.Context, userID string) error {
	view, err := u.currentView(ctx, userID)
	if err != nil {
		return err
	}
	if view == nil {
		u.logger.Debug("logout with no active session", "user_id", userID)
		return nil
	}

	remoteCtx, cancel := context.WithTimeout(ctx, u.logoutTimeout)
	defer cancel()

	if err := u.gateway.Logout(remoteCtx, view); err != nil {
		u.logger.Warn("remote logout failed, clearing local session anyway",
			"user_id", userID,
			"error", err)
	}

	if err := u.bindings.ClearSession(ctx, userID); err != nil {
		// Drop the cache entry even when the store write failed, so the
		// next resolve goes back to the store instead of serving the
		// stale view.
		u.cache.Invalidate(userID)
		return fmt.Errorf("failed to clear session: %w", err)
	}
	u.cache.Invalidate(userID)

	u.logger.Info("session closed", "user_id", userID)
	return nil
}

// ResolveActiveSession returns the user's active session view, consulting
// the cache first and falling back to the bindings table. Never-bound,
// never-logged-in and logged-out users all get ErrNoActiveSession; the
// caller cannot tell them apart.
func (u *SessionUsecase) ResolveActiveSession(ctx context.Context, userID string) (*domain.SessionView, error) {
	if view, ok := u.cache.Get(userID); ok {
		return view, nil
	}

	binding, err := u.bindings.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrBindingNotFound) {
			return nil, domain.ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	view := binding.View()
	if view == nil {
		return nil, domain.ErrNoActiveSession
	}

	// Rebuild the cache entry lost to a restart or eviction
	u.cache.Put(userID, view)
	return view, nil
}

// resolveCredentials picks the remote identity and password for a login
func (u *SessionUsecase) resolveCredentials(ctx context.Context, user *domain.LocalUser, password string) (string, string, error) {
	if user.IsAdmin() {
		if err := u.ensureAdminBinding(ctx, user.ID); err != nil {
			return "", "", err
		}
		return u.adminUsername, u.adminPassword, nil
	}

	binding, err := u.bindings.Get(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrBindingNotFound) {
			return "", "", domain.ErrNotProvisioned
		}
		return "", "", fmt.Errorf("failed to load binding: %w", err)
	}

	return binding.ConfidiosUsername, password, nil
}

// ensureAdminBinding materializes the admin's binding row on first login
// so the session write always has a row to update. Racing creations are
// fine: the loser's ErrBindingExists means the row is there.
func (u *SessionUsecase) ensureAdminBinding(ctx context.Context, userID string) error {
	_, err := u.bindings.Get(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrBindingNotFound) {
		return fmt.Errorf("failed to load admin binding: %w", err)
	}

	if _, err := u.bindings.Create(ctx, userID, u.adminUsername, "0"); err != nil {
		if errors.Is(err, domain.ErrBindingExists) {
			return nil
		}
		return fmt.Errorf("failed to create admin binding: %w", err)
	}

	u.logger.Info("admin binding created", "user_id", userID, "identity", u.adminUsername)
	return nil
}

// currentView returns the user's session view or nil when there is none
func (u *SessionUsecase) currentView(ctx context.Context, userID string) (*domain.SessionView, error) {
	view, err := u.ResolveActiveSession(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveSession) {
			return nil, nil
		}
		return nil, err
	}
	return view, nil
}
