package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"confidios-proxy/app/domain"
	"confidios-proxy/app/port"
	"confidios-proxy/app/utils/validator"
)

// UserUsecase provisions Confidios identities for local users and exposes
// the recorded bindings. Provisioning is idempotent per user: once a
// binding exists it is returned unchanged, with no second remote identity.
type UserUsecase struct {
	bindings  port.BindingRepository
	gateway   port.ConfidiosGateway
	validator *validator.Validator
	logger    *slog.Logger
}

// NewUserUsecase creates a new UserUsecase instance
func NewUserUsecase(
	bindings port.BindingRepository,
	gateway port.ConfidiosGateway,
	v *validator.Validator,
	logger *slog.Logger,
) *UserUsecase {
	return &UserUsecase{
		bindings:  bindings,
		gateway:   gateway,
		validator: v,
		logger:    logger.With("component", "user_usecase"),
	}
}

// CreateUser provisions a Confidios identity for a local user. The remote
// identity is derived from the user's email; the identity password is
// generated and never stored, so the identity is only usable through
// sessions opened by this service.
func (u *UserUsecase) CreateUser(ctx context.Context, req *domain.ProvisionRequest) (*domain.ConfidiosBinding, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	identity, err := domain.CleanUsername(req.Email)
	if err != nil {
		return nil, err
	}

	// An existing binding wins before any remote call is made
	existing, err := u.bindings.Get(ctx, req.UserID)
	if err == nil {
		u.logger.Debug("user already provisioned", "user_id", req.UserID)
		return existing, nil
	}
	if !errors.Is(err, domain.ErrBindingNotFound) {
		return nil, fmt.Errorf("failed to check existing binding: %w", err)
	}

	password := uuid.NewString()

	session, err := u.gateway.CreateIdentity(ctx, identity, password)
	if err != nil {
		u.logger.Error("identity provisioning failed",
			"user_id", req.UserID,
			"identity", identity,
			"error", err)
		return nil, err
	}

	binding, err := u.bindings.Create(ctx, req.UserID, session.Username, session.Balance)
	if err != nil {
		if errors.Is(err, domain.ErrBindingExists) {
			// Lost a provisioning race; the winner's row is the binding
			return u.bindings.Get(ctx, req.UserID)
		}
		return nil, fmt.Errorf("failed to record binding: %w", err)
	}

	u.logger.Info("user provisioned",
		"user_id", req.UserID,
		"identity", binding.ConfidiosUsername)

	return binding, nil
}

// ListUsers returns all bindings with local user display attributes
func (u *UserUsecase) ListUsers(ctx context.Context) ([]*domain.BindingWithUser, error) {
	return u.bindings.ListAll(ctx)
}

// GetBinding returns the binding for a single user
func (u *UserUsecase) GetBinding(ctx context.Context, userID string) (*domain.ConfidiosBinding, error) {
	return u.bindings.Get(ctx, userID)
}
