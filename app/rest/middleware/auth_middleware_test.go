package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"confidios-proxy/app/domain"
	mock_port "confidios-proxy/app/mocks"
	"confidios-proxy/app/utils/logger"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mock_port.MockIdentityVerifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	verifier := mock_port.NewMockIdentityVerifier(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewAuthMiddleware(verifier, testLogger), verifier
}

func runMiddleware(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return rec, c, err
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	t.Run("verified cookie caller passes", func(t *testing.T) {
		mw, verifier := newTestAuthMiddleware(t)
		user := &domain.LocalUser{ID: "user-1", Email: "alice@example.com", Role: domain.UserRoleUser}

		cookie := "ory_kratos_session=abc123"
		verifier.EXPECT().
			VerifyCaller(gomock.Any(), cookie).
			Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
		req.Header.Set("Cookie", cookie)

		rec, c, err := runMiddleware(mw.RequireAuth(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user, CurrentUser(c))
		assert.Equal(t, "user-1", c.Get("user_id"))
	})

	t.Run("bearer token is stripped before verification", func(t *testing.T) {
		mw, verifier := newTestAuthMiddleware(t)
		user := &domain.LocalUser{ID: "user-1", Role: domain.UserRoleUser}

		verifier.EXPECT().
			VerifyCaller(gomock.Any(), "token-abc").
			Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
		req.Header.Set("Authorization", "Bearer token-abc")

		_, _, err := runMiddleware(mw.RequireAuth(), req)
		require.NoError(t, err)
	})

	t.Run("missing credential yields 401", func(t *testing.T) {
		mw, _ := newTestAuthMiddleware(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)

		_, _, err := runMiddleware(mw.RequireAuth(), req)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("rejected credential yields 401", func(t *testing.T) {
		mw, verifier := newTestAuthMiddleware(t)

		verifier.EXPECT().
			VerifyCaller(gomock.Any(), "bad-token").
			Return(nil, domain.ErrUnauthenticated)

		req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
		req.Header.Set("X-Session-Token", "bad-token")

		_, _, err := runMiddleware(mw.RequireAuth(), req)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	tests := []struct {
		name         string
		user         *domain.LocalUser
		expectedCode int
	}{
		{
			name:         "admin passes",
			user:         &domain.LocalUser{ID: "admin-1", Role: domain.UserRoleAdmin},
			expectedCode: http.StatusOK,
		},
		{
			name:         "regular user is forbidden",
			user:         &domain.LocalUser{ID: "user-1", Role: domain.UserRoleUser},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "missing user is unauthorized",
			user:         nil,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, _ := newTestAuthMiddleware(t)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/v1/auths/login", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.user != nil {
				c.Set(ContextKeyUser, tt.user)
			}

			handler := mw.RequireAdmin()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			err := handler(c)

			if tt.expectedCode == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				var httpErr *echo.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, tt.expectedCode, httpErr.Code)
			}
		})
	}
}
