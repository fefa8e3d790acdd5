package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"confidios-proxy/app/domain"
	"confidios-proxy/app/port"
)

// Postgres error code for unique constraint violations
const uniqueViolationCode = "23505"

// BindingRepository implements port.BindingRepository for PostgreSQL.
// Every write is a single statement keyed by user_id; updated_at always
// reflects the write that committed.
type BindingRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewBindingRepository creates a new PostgreSQL binding repository
func NewBindingRepository(db DatabaseIface, logger *slog.Logger) port.BindingRepository {
	return &BindingRepository{
		db:     db,
		logger: logger.With("component", "binding_repository"),
	}
}

// Get returns the binding for a user
func (r *BindingRepository) Get(ctx context.Context, userID string) (*domain.ConfidiosBinding, error) {
	query := `
		SELECT user_id, confidios_username, confidios_session_id, balance,
		       is_session_active, created_at, updated_at
		FROM confidios_bindings
		WHERE user_id = $1`

	binding := &domain.ConfidiosBinding{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&binding.UserID,
		&binding.ConfidiosUsername,
		&binding.SessionID,
		&binding.Balance,
		&binding.SessionActive,
		&binding.CreatedAt,
		&binding.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBindingNotFound
		}
		r.logger.Error("failed to get binding", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get binding: %w", err)
	}

	return binding, nil
}

// Create inserts a new binding with no active session
func (r *BindingRepository) Create(ctx context.Context, userID, confidiosUsername, balance string) (*domain.ConfidiosBinding, error) {
	query := `
		INSERT INTO confidios_bindings (
			user_id, confidios_username, confidios_session_id, balance,
			is_session_active, created_at, updated_at
		) VALUES ($1, $2, NULL, $3, FALSE, $4, $4)`

	now := time.Now().Unix()

	_, err := r.db.Exec(ctx, query, userID, confidiosUsername, balance, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domain.ErrBindingExists
		}
		r.logger.Error("failed to create binding", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to create binding: %w", err)
	}

	r.logger.Info("binding created",
		"user_id", userID,
		"confidios_username", confidiosUsername)

	return &domain.ConfidiosBinding{
		UserID:            userID,
		ConfidiosUsername: confidiosUsername,
		Balance:           balance,
		SessionActive:     false,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// SetSession records a freshly issued remote session token and balance
func (r *BindingRepository) SetSession(ctx context.Context, userID, sessionID, balance string) error {
	query := `
		UPDATE confidios_bindings
		SET confidios_session_id = $1, balance = $2, is_session_active = TRUE, updated_at = $3
		WHERE user_id = $4`

	result, err := r.db.Exec(ctx, query, sessionID, balance, time.Now().Unix(), userID)
	if err != nil {
		r.logger.Error("failed to set session", "user_id", userID, "error", err)
		return fmt.Errorf("failed to set session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrBindingNotFound
	}

	r.logger.Info("session recorded", "user_id", userID)
	return nil
}

// ClearSession drops the session token and marks the session inactive.
// Clearing a missing or already-cleared binding is a no-op success.
func (r *BindingRepository) ClearSession(ctx context.Context, userID string) error {
	query := `
		UPDATE confidios_bindings
		SET confidios_session_id = NULL, is_session_active = FALSE, updated_at = $1
		WHERE user_id = $2`

	if _, err := r.db.Exec(ctx, query, time.Now().Unix(), userID); err != nil {
		r.logger.Error("failed to clear session", "user_id", userID, "error", err)
		return fmt.Errorf("failed to clear session: %w", err)
	}

	r.logger.Info("session cleared", "user_id", userID)
	return nil
}

// UpdateBalance stores the last balance reported by Confidios
func (r *BindingRepository) UpdateBalance(ctx context.Context, userID, balance string) error {
	query := `
		UPDATE confidios_bindings
		SET balance = $1, updated_at = $2
		WHERE user_id = $3`

	result, err := r.db.Exec(ctx, query, balance, time.Now().Unix(), userID)
	if err != nil {
		r.logger.Error("failed to update balance", "user_id", userID, "error", err)
		return fmt.Errorf("failed to update balance: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrBindingNotFound
	}

	return nil
}

// ListAll returns every binding joined with local user display attributes
func (r *BindingRepository) ListAll(ctx context.Context) ([]*domain.BindingWithUser, error) {
	query := `
		SELECT b.user_id, b.confidios_username, b.confidios_session_id, b.balance,
		       b.is_session_active, b.created_at, b.updated_at,
		       u.name, u.email, u.profile_image_url
		FROM confidios_bindings b
		JOIN users u ON u.id = b.user_id
		ORDER BY u.name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list bindings", "error", err)
		return nil, fmt.Errorf("failed to list bindings: %w", err)
	}
	defer rows.Close()

	var bindings []*domain.BindingWithUser
	for rows.Next() {
		entry := &domain.BindingWithUser{}
		err := rows.Scan(
			&entry.UserID,
			&entry.ConfidiosUsername,
			&entry.SessionID,
			&entry.Balance,
			&entry.SessionActive,
			&entry.CreatedAt,
			&entry.UpdatedAt,
			&entry.Name,
			&entry.Email,
			&entry.ProfileImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan binding row: %w", err)
		}
		bindings = append(bindings, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating binding rows: %w", err)
	}

	return bindings, nil
}
