package port

//go:generate mockgen -source=confidios_port.go -destination=../mocks/mock_confidios_port.go -package=mocks

import (
	"context"
	"encoding/json"

	"confidios-proxy/app/domain"
)

// ConfidiosGateway forwards operations to the Confidios service, attaching
// the caller's session credential where one is required, and translating
// remote statuses into domain errors through one shared mapping.
type ConfidiosGateway interface {
	// Login authenticates a Confidios identity and returns the issued
	// session. Rejected credentials map to domain.ErrRemoteAuthRejected.
	Login(ctx context.Context, identity, password string) (*domain.ConfidiosSession, error)

	// Logout revokes the remote session. Callers decide whether a failure
	// here matters; local state is cleared regardless.
	Logout(ctx context.Context, view *domain.SessionView) error

	// ListFiles lists a directory. Entries are passed through opaque.
	ListFiles(ctx context.Context, view *domain.SessionView, path string) ([]json.RawMessage, error)

	// ReadFile reads a file and the balance reported with it.
	ReadFile(ctx context.Context, view *domain.SessionView, path string) (*domain.FileContent, error)

	// MakeDirectory creates a directory and returns the new balance.
	MakeDirectory(ctx context.Context, view *domain.SessionView, path string) (string, error)

	// CreateIdentity provisions a new Confidios identity. The returned
	// session carries the assigned username and initial balance; no session
	// id is issued at creation time.
	CreateIdentity(ctx context.Context, identity, password string) (*domain.ConfidiosSession, error)
}
