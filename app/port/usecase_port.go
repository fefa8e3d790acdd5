package port

//go:generate mockgen -source=usecase_port.go -destination=../mocks/mock_usecase_port.go -package=mocks

import (
	"context"
	"encoding/json"

	"confidios-proxy/app/domain"
)

// SessionUsecase keeps the local binding row, the in-process cache and the
// remote Confidios session in sync across login and logout.
type SessionUsecase interface {
	// Login opens a Confidios session for the user. Admin callers use the
	// configured fixed identity; ordinary users use the username from their
	// binding, failing with domain.ErrNotProvisioned when none exists.
	Login(ctx context.Context, user *domain.LocalUser, password string) (*domain.SessionView, error)

	// Logout clears the local session state unconditionally and revokes the
	// remote session on a best-effort basis. Logging out with no active
	// session is a no-op success.
	Logout(ctx context.Context, userID string) error

	// ResolveActiveSession returns the user's active session view through
	// the cache-then-store fallback, or domain.ErrNoActiveSession. The
	// caller cannot distinguish never-logged-in from logged-out.
	ResolveActiveSession(ctx context.Context, userID string) (*domain.SessionView, error)
}

// FilesystemUsecase proxies filesystem operations for users holding an
// active Confidios session.
type FilesystemUsecase interface {
	ListFiles(ctx context.Context, userID, path string) ([]json.RawMessage, error)
	ReadFile(ctx context.Context, userID, path string) (*domain.FileContent, error)
	MakeDirectory(ctx context.Context, userID, path string) (string, error)
}

// UserUsecase manages Confidios identity provisioning and listing.
type UserUsecase interface {
	// CreateUser provisions a Confidios identity for a local user and
	// records the binding. Re-provisioning an already-bound user returns
	// the existing binding unchanged.
	CreateUser(ctx context.Context, req *domain.ProvisionRequest) (*domain.ConfidiosBinding, error)

	// ListUsers returns all bindings with local display attributes.
	ListUsers(ctx context.Context) ([]*domain.BindingWithUser, error)

	// GetBinding returns the binding for a single user, or
	// domain.ErrBindingNotFound.
	GetBinding(ctx context.Context, userID string) (*domain.ConfidiosBinding, error)
}
