package port

//go:generate mockgen -source=binding_port.go -destination=../mocks/mock_binding_port.go -package=mocks

import (
	"context"

	"confidios-proxy/app/domain"
)

// BindingRepository is the durable store of Confidios bindings, one row
// per local user id. All writes are single-statement and atomic with
// respect to concurrent writers on the same key.
type BindingRepository interface {
	// Get returns the binding for a user, or domain.ErrBindingNotFound.
	Get(ctx context.Context, userID string) (*domain.ConfidiosBinding, error)

	// Create inserts a new binding with no active session. It returns
	// domain.ErrBindingExists when a binding for the user already exists;
	// the existing row is never overwritten.
	Create(ctx context.Context, userID, confidiosUsername, balance string) (*domain.ConfidiosBinding, error)

	// SetSession records a freshly issued remote session token and balance,
	// marking the session active. Returns domain.ErrBindingNotFound when no
	// binding exists for the user.
	SetSession(ctx context.Context, userID, sessionID, balance string) error

	// ClearSession drops the session token and marks the session inactive.
	// Clearing an already-cleared binding is a no-op success.
	ClearSession(ctx context.Context, userID string) error

	// UpdateBalance stores the last balance reported by Confidios.
	UpdateBalance(ctx context.Context, userID, balance string) error

	// ListAll returns every binding joined with the local user's display
	// attributes, ordered by user name.
	ListAll(ctx context.Context) ([]*domain.BindingWithUser, error)
}

// SessionCache is the process-local accelerator in front of the binding
// store. It is best-effort and never authoritative: a miss falls through
// to the repository, and entries are dropped on logout.
type SessionCache interface {
	Get(userID string) (*domain.SessionView, bool)
	Put(userID string, view *domain.SessionView)
	Invalidate(userID string)
}
