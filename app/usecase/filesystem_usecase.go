package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"confidios-proxy/app/domain"
	"confidios-proxy/app/port"
)

// FilesystemUsecase proxies filesystem operations to Confidios for users
// holding an active session, and keeps the locally mirrored balance in
// step with the balances Confidios reports along the way.
type FilesystemUsecase struct {
	sessions port.SessionUsecase
	bindings port.BindingRepository
	cache    port.SessionCache
	gateway  port.ConfidiosGateway

	baseUserFolder string

	logger *slog.Logger
}

// NewFilesystemUsecase creates a new FilesystemUsecase instance
func NewFilesystemUsecase(
	sessions port.SessionUsecase,
	bindings port.BindingRepository,
	cache port.SessionCache,
	gateway port.ConfidiosGateway,
	baseUserFolder string,
	logger *slog.Logger,
) *FilesystemUsecase {
	return &FilesystemUsecase{
		sessions:       sessions,
		bindings:       bindings,
		cache:          cache,
		gateway:        gateway,
		baseUserFolder: baseUserFolder,
		logger:         logger.With("component", "filesystem_usecase"),
	}
}

// ListFiles lists a remote directory for the user
func (u *FilesystemUsecase) ListFiles(ctx context.Context, userID, path string) ([]json.RawMessage, error) {
	view, err := u.sessions.ResolveActiveSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	files, err := u.gateway.ListFiles(ctx, view, path)
	if err != nil {
		return nil, err
	}

	u.logger.Debug("directory listed", "user_id", userID, "path", path, "entries", len(files))
	return files, nil
}

// ReadFile reads a remote file and refreshes the mirrored balance from
// the response
func (u *FilesystemUsecase) ReadFile(ctx context.Context, userID, path string) (*domain.FileContent, error) {
	view, err := u.sessions.ResolveActiveSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	content, err := u.gateway.ReadFile(ctx, view, path)
	if err != nil {
		return nil, err
	}

	u.refreshBalance(ctx, userID, view, content.Balance)
	return content, nil
}

// MakeDirectory creates a remote directory. The path is validated before
// any remote call is made, so malformed paths never reach Confidios.
func (u *FilesystemUsecase) MakeDirectory(ctx context.Context, userID, path string) (string, error) {
	if err := domain.ValidateNewDirectoryPath(path, u.baseUserFolder); err != nil {
		return "", err
	}

	view, err := u.sessions.ResolveActiveSession(ctx, userID)
	if err != nil {
		return "", err
	}

	balance, err := u.gateway.MakeDirectory(ctx, view, path)
	if err != nil {
		return "", err
	}

	u.refreshBalance(ctx, userID, view, balance)

	u.logger.Info("directory created", "user_id", userID, "path", path)
	return balance, nil
}

// refreshBalance mirrors a balance reported by Confidios into the store
// and the cache, store first. The operation that carried the balance has
// already succeeded, so a failed refresh is logged and swallowed rather
// than surfaced to the caller.
func (u *FilesystemUsecase) refreshBalance(ctx context.Context, userID string, view *domain.SessionView, balance string) {
	if balance == "" || balance == view.Balance {
		return
	}

	if err := u.bindings.UpdateBalance(ctx, userID, balance); err != nil {
		u.logger.Warn("failed to refresh balance",
			"user_id", userID,
			"error", fmt.Errorf("update balance: %w", err))
		return
	}

	refreshed := *view
	refreshed.Balance = balance
	u.cache.Put(userID, &refreshed)
}
