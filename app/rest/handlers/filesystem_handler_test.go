package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"confidios-proxy/app/domain"
	mock_port "confidios-proxy/app/mocks"
	"confidios-proxy/app/utils/logger"
)

func newTestFilesystemHandler(t *testing.T) (*FilesystemHandler, *mock_port.MockFilesystemUsecase) {
	t.Helper()

	ctrl := gomock.NewController(t)
	filesystem := mock_port.NewMockFilesystemUsecase(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewFilesystemHandler(filesystem, testLogger), filesystem
}

func TestFilesystemHandler_ListFiles(t *testing.T) {
	t.Run("returns file entries", func(t *testing.T) {
		handler, filesystem := newTestFilesystemHandler(t)

		filesystem.EXPECT().
			ListFiles(gomock.Any(), "user-1", "home/alice").
			Return([]json.RawMessage{json.RawMessage(`{"name":"a.txt"}`)}, nil)

		c, rec := newEchoContext(t, http.MethodPost, "/v1/ls", `{"path":"home/alice"}`, testUser())

		require.NoError(t, handler.ListFiles(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp FileListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		require.Len(t, resp.Files, 1)
	})

	t.Run("missing path", func(t *testing.T) {
		handler, _ := newTestFilesystemHandler(t)

		c, rec := newEchoContext(t, http.MethodPost, "/v1/ls", `{}`, testUser())

		require.NoError(t, handler.ListFiles(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no active session", func(t *testing.T) {
		handler, filesystem := newTestFilesystemHandler(t)

		filesystem.EXPECT().
			ListFiles(gomock.Any(), "user-1", "home/alice").
			Return(nil, domain.ErrNoActiveSession)

		c, rec := newEchoContext(t, http.MethodPost, "/v1/ls", `{"path":"home/alice"}`, testUser())

		require.NoError(t, handler.ListFiles(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestFilesystemHandler_ReadFile(t *testing.T) {
	handler, filesystem := newTestFilesystemHandler(t)

	filesystem.EXPECT().
		ReadFile(gomock.Any(), "user-1", "home/alice/a.txt").
		Return(&domain.FileContent{Balance: "95", Data: json.RawMessage(`{"text":"hello"}`)}, nil)

	c, rec := newEchoContext(t, http.MethodPost, "/v1/cat", `{"path":"home/alice/a.txt"}`, testUser())

	require.NoError(t, handler.ReadFile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp FileContentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "95", resp.Content.Balance)
}

func TestFilesystemHandler_MakeDirectory(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		handler, filesystem := newTestFilesystemHandler(t)

		filesystem.EXPECT().
			MakeDirectory(gomock.Any(), "user-1", "home/alice/docs").
			Return("90", nil)

		c, rec := newEchoContext(t, http.MethodPost, "/v1/mkdir", `{"path":"home/alice/docs"}`, testUser())

		require.NoError(t, handler.MakeDirectory(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp BalanceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "90", resp.Balance)
	})

	t.Run("invalid path maps to 400", func(t *testing.T) {
		handler, filesystem := newTestFilesystemHandler(t)

		filesystem.EXPECT().
			MakeDirectory(gomock.Any(), "user-1", "home/alice/../etc").
			Return("", domain.NewValidationError("path", "home/alice/../etc", "path must not contain relative segments"))

		c, rec := newEchoContext(t, http.MethodPost, "/v1/mkdir", `{"path":"home/alice/../etc"}`, testUser())

		require.NoError(t, handler.MakeDirectory(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "path must not contain relative segments", resp.Error)
	})

	t.Run("remote detail passes through", func(t *testing.T) {
		handler, filesystem := newTestFilesystemHandler(t)

		filesystem.EXPECT().
			MakeDirectory(gomock.Any(), "user-1", "home/alice/docs").
			Return("", &domain.RemoteError{Op: "mkdir", StatusCode: http.StatusConflict, Detail: "directory already exists"})

		c, rec := newEchoContext(t, http.MethodPost, "/v1/mkdir", `{"path":"home/alice/docs"}`, testUser())

		require.NoError(t, handler.MakeDirectory(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "directory already exists")
	})
}
