package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go -package=mocks

import (
	"context"

	"confidios-proxy/app/domain"
)

// IdentityVerifier resolves the authenticated caller from the request
// credential (session cookie header or bearer token). Implemented against
// the platform identity provider; this service never authenticates callers
// itself.
type IdentityVerifier interface {
	// VerifyCaller returns the verified local user for the credential, or
	// domain.ErrUnauthenticated.
	VerifyCaller(ctx context.Context, credential string) (*domain.LocalUser, error)
}
