package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"confidios-proxy/app/domain"
	mock_port "confidios-proxy/app/mocks"
	"confidios-proxy/app/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionMocks struct {
	bindings *mock_port.MockBindingRepository
	cache    *mock_port.MockSessionCache
	gateway  *mock_port.MockConfidiosGateway
}

func newTestSessionUsecase(t *testing.T) (*SessionUsecase, *sessionMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := &sessionMocks{
		bindings: mock_port.NewMockBindingRepository(ctrl),
		cache:    mock_port.NewMockSessionCache(ctrl),
		gateway:  mock_port.NewMockConfidiosGateway(ctrl),
	}

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	uc := NewSessionUsecase(
		mocks.bindings,
		mocks.cache,
		mocks.gateway,
		"keeper",
		"admin-secret",
		200*time.Millisecond,
		testLogger,
	)

	return uc, mocks
}

func adminUser() *domain.LocalUser {
	return &domain.LocalUser{ID: "admin-1", Email: "admin@example.com", Role: domain.UserRoleAdmin}
}

func regularUser() *domain.LocalUser {
	return &domain.LocalUser{ID: "user-1", Email: "alice@example.com", Role: domain.UserRoleUser}
}

func activeBinding(userID string) *domain.ConfidiosBinding {
	sid := "session-abc"
	return &domain.ConfidiosBinding{
		UserID:            userID,
		ConfidiosUsername: "alice-at-example.com",
		SessionID:         &sid,
		Balance:           "10",
		SessionActive:     true,
	}
}

func TestSessionUsecase_Login(t *testing.T) {
	tests := []struct {
		name       string
		user       *domain.LocalUser
		password   string
		setupMocks func(*sessionMocks)
		expected   *domain.SessionView
		wantErr    error
	}{
		{
			name:     "user login with bound identity",
			user:     regularUser(),
			password: "user-secret",
			setupMocks: func(m *sessionMocks) {
				m.bindings.EXPECT().
					Get(gomock.Any(), "user-1").
					Return(&domain.ConfidiosBinding{
						UserID:            "user-1",
						ConfidiosUsername: "alice-at-example.com",
						Balance:           "10",
					}, nil)
				m.gateway.EXPECT().
					Login(gomock.Any(), "alice-at-example.com", "user-secret").
					Return(&domain.ConfidiosSession{
						Username:  "alice-at-example.com",
						SessionID: "session-abc",
						Balance:   "100",
					}, nil)
				m.bindings.EXPECT().
					SetSession(gomock.Any(), "user-1", "session-abc", "100").
					Return(nil)
				m.cache.EXPECT().
					Put("user-1", &domain.SessionView{
						ConfidiosUsername: "alice-at-example.com",
						SessionID:         "session-abc",
						Balance:           "100",
					})
			},
			expected: &domain.SessionView{
				ConfidiosUsername: "alice-at-example.com",
				SessionID:         "session-abc",
				Balance:           "100",
			},
		},
		{
			name:     "admin login uses fixed identity and creates binding",
			user:     adminUser(),
			password: "ignored",
			setupMocks: func(m *sessionMocks) {
				m.bindings.EXPECT().
					Get(gomock.Any(), "admin-1").
					Return(nil, domain.ErrBindingNotFound)
				m.bindings.EXPECT().
					Create(gomock.Any(), "admin-1", "keeper", "0").
					Return(&domain.ConfidiosBinding{UserID: "admin-1", ConfidiosUsername: "keeper"}, nil)
				m.gateway.EXPECT().
					Login(gomock.Any(), "keeper", "admin-secret").
					Return(&domain.ConfidiosSession{
						Username:  "keeper",
						SessionID: "session-admin",
						Balance:   "1000",
					}, nil)
				m.bindings.EXPECT().
					SetSession(gomock.Any(), "admin-1", "session-admin", "1000").
					Return(nil)
				m.cache.EXPECT().
					Put("admin-1", gomock.Any())
			},
			expected: &domain.SessionView{
				ConfidiosUsername: "keeper",
				SessionID:         "session-admin",
				Balance:           "1000",
			},
		},
		{
			name:     "admin login with existing binding skips creation",
			user:     adminUser(),
			password: "",
			setupMocks: func(m *sessionMocks) {
				m.bindings.EXPECT().
					Get(gomock.Any(), "admin-1").
					Return(&domain.ConfidiosBinding{UserID: "admin-1", ConfidiosUsername: "keeper"}, nil)
				m.gateway.EXPECT().
					Login(gomock.Any(), "keeper", "admin-secret").
					Return(&domain.ConfidiosSession{
						Username:  "keeper",
						SessionID: "session-admin",
						Balance:   "1000",
					}, nil)
				m.bindings.EXPECT().
					SetSession(gomock.Any(), "admin-1", "session-admin", "1000").
					Return(nil)
				m.cache.EXPECT().
					Put("admin-1", gomock.Any())
			},
			expected: &domain.SessionView{
				ConfidiosUsername: "keeper",
				SessionID:         "session-admin",
				Balance:           "1000",
			},
		},
		{
			name:     "unprovisioned user cannot log in",
			user:     regularUser(),
			password: "user-secret",
			setupMocks: func(m *sessionMocks) {
				m.bindings.EXPECT().
					Get(gomock.Any(), "user-1").
					Return(nil, domain.ErrBindingNotFound)
			},
			wantErr: domain.ErrNotProvisioned,
		},
		{
			name:     "remote rejection leaves local state untouched",
			user:     regularUser(),
			password: "wrong",
			setupMocks: func(m *sessionMocks) {
				m.bindings.EXPECT().
					Get(gomock.Any(), "user-1").
					Return(&domain.ConfidiosBinding{
						UserID:            "user-1",
						ConfidiosUsername: "alice-at-example.com",
					}, nil)
				m.gateway.EXPECT().
					Login(gomock.Any(), "alice-at-example.com", "wrong").
					Return(nil, domain.ErrRemoteAuthRejected)
			},
			wantErr: domain.ErrRemoteAuthRejected,
		},
		{
			name:     "store failure aborts before the cache is touched",
			user:     regularUser(),
			password: "user-secret",
			setupMocks: func(m *sessionMocks) {
				m.bindings.EXPECT().
					Get(gomock.Any(), "user-1").
					Return(&domain.ConfidiosBinding{
						UserID:            "user-1",
						ConfidiosUsername: "alice-at-example.com",
					}, nil)
				m.gateway.EXPECT().
					Login(gomock.Any(), "alice-at-example.com", "user-secret").
					Return(&domain.ConfidiosSession{
						Username:  "alice-at-example.com",
						SessionID: "session-abc",
						Balance:   "100",
					}, nil)
				m.bindings.EXPECT().
					SetSession(gomock.Any(), "user-1", "session-abc", "100").
					Return(errors.New("connection reset"))
			},
			wantErr: errors.New("failed to record session"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mocks := newTestSessionUsecase(t)
			tt.setupMocks(mocks)

			view, err := uc.Login(context.Background(), tt.user, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, view)
			}
		})
	}
}

func TestSessionUsecase_Logout(t *testing.T) {
	view := &domain.SessionView{
		ConfidiosUsername: "alice-at-example.com",
		SessionID:         "session-abc",
		Balance:           "10",
	}

	tests := []struct {
		name       string
		setupMocks func(*sessionMocks)
		wantErr    bool
	}{
		{
			name: "logout with cached session",
			setupMocks: func(m *sessionMocks) {
				m.cache.EXPECT().Get("user-1").Return(view, true)
				m.gateway.EXPECT().Logout(gomock.Any(), view).Return(nil)
				m.bindings.EXPECT().ClearSession(gomock.Any(), "user-1").Return(nil)
				m.cache.EXPECT().Invalidate("user-1")
			},
		},
		{
			name: "remote failure still clears local state",
			setupMocks: func(m *sessionMocks) {
				m.cache.EXPECT().Get("user-1").Return(view, true)
				m.gateway.EXPECT().Logout(gomock.Any(), view).Return(domain.ErrRemoteUnreachable)
				m.bindings.EXPECT().ClearSession(gomock.Any(), "user-1").Return(nil)
				m.cache.EXPECT().Invalidate("user-1")
			},
		},
		{
			name: "logout with no active session is a no-op",
			setupMocks: func(m *sessionMocks) {
				m.cache.EXPECT().Get("user-1").Return(nil, false)
				m.bindings.EXPECT().
					Get(gomock.Any(), "user-1").
					Return(nil, domain.ErrBindingNotFound)
			},
		},
		{
			name: "store clear failure surfaces but drops the cache entry",
			setupMocks: func(m *sessionMocks) {
				m.cache.EXPECT().Get("user-1").Return(view, true)
				m.gateway.EXPECT().Logout(gomock.Any(), view).Return(nil)
				m.bindings.EXPECT().
					ClearSession(gomock.Any(), "user-1").
					Return(errors.New("connection reset"))
				m.cache.EXPECT().Invalidate("user-1")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mocks := newTestSessionUsecase(t)
			tt.setupMocks(mocks)

			err := uc.Logout(context.Background(), "user-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionUsecase_ResolveActiveSession(t *testing.T) {
	cachedView := &domain.SessionView{
		ConfidiosUsername: "alice-at-example.com",
		SessionID:         "session-abc",
		Balance:           "10",
	}

	tests := []struct {
		name       string
		setupMocks func(*sessionMocks)
		expected   *domain.SessionView
		wantErr    error
	}{
		{
			name: "cache hit",
			setupMocks: func(m *sessionMocks) {
				m.cache.EXPECT().Get("user-1").Return(cachedView, true)
			},
			expected: cachedView,
		},
		{
			name: "cache miss rebuilds from store",
			setupMocks: func(m *sessionMocks) {
				m.cache.EXPECT().Get("user-1").Return(nil, false)
				m.bindings.EXPECT().
					Get(gomock.Any(), "user-1").
					Return(activeBinding("user-1"), nil)
				m.cache.EXPECT().Put("user-1", cachedView)
			},
			expected: cachedView,
		},
		{
			name: "inactive binding reads as absent",
			setupMocks: func(m *sessionMocks) {
				m.cache.EXPECT().Get("user-1").Return(nil, false)
				m.bindings.EXPECT().
					Get(gomock.Any(), "user-1").
					Return(&domain.ConfidiosBinding{
						UserID:            "user-1",
						ConfidiosUsername: "alice-at-example.com",
						Balance:           "10",
					}, nil)
			},
			wantErr: domain.ErrNoActiveSession,
		},
		{
			name: "missing binding reads as absent",
			setupMocks: func(m *sessionMocks) {
				m.cache.EXPECT().Get("user-1").Return(nil, false)
				m.bindings.EXPECT().
					Get(gomock.Any(), "user-1").
					Return(nil, domain.ErrBindingNotFound)
			},
			wantErr: domain.ErrNoActiveSession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mocks := newTestSessionUsecase(t)
			tt.setupMocks(mocks)

			view, err := uc.ResolveActiveSession(context.Background(), "user-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, view)
			}
		})
	}
}
