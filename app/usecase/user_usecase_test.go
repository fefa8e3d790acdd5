package usecase

import (
	"context"
	"testing"

	"confidios-proxy/app/domain"
	mock_port "confidios-proxy/app/mocks"
	"confidios-proxy/app/utils/logger"
	"confidios-proxy/app/utils/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type userMocks struct {
	bindings *mock_port.MockBindingRepository
	gateway  *mock_port.MockConfidiosGateway
}

func newTestUserUsecase(t *testing.T) (*UserUsecase, *userMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := &userMocks{
		bindings: mock_port.NewMockBindingRepository(ctrl),
		gateway:  mock_port.NewMockConfidiosGateway(ctrl),
	}

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	uc := NewUserUsecase(mocks.bindings, mocks.gateway, validator.New(), testLogger)

	return uc, mocks
}

func provisionRequest() *domain.ProvisionRequest {
	return &domain.ProvisionRequest{
		UserID: "user-2",
		Name:   "Bob",
		Email:  "Bob@Example.com",
		Role:   "user",
	}
}

func TestUserUsecase_CreateUser(t *testing.T) {
	t.Run("provisions a new identity", func(t *testing.T) {
		uc, mocks := newTestUserUsecase(t)

		mocks.bindings.EXPECT().
			Get(gomock.Any(), "user-2").
			Return(nil, domain.ErrBindingNotFound)
		mocks.gateway.EXPECT().
			CreateIdentity(gomock.Any(), "bob-at-example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, identity, password string) (*domain.ConfidiosSession, error) {
				assert.NotEmpty(t, password)
				return &domain.ConfidiosSession{Username: identity, Balance: "100"}, nil
			})
		mocks.bindings.EXPECT().
			Create(gomock.Any(), "user-2", "bob-at-example.com", "100").
			Return(&domain.ConfidiosBinding{
				UserID:            "user-2",
				ConfidiosUsername: "bob-at-example.com",
				Balance:           "100",
			}, nil)

		binding, err := uc.CreateUser(context.Background(), provisionRequest())

		require.NoError(t, err)
		assert.Equal(t, "bob-at-example.com", binding.ConfidiosUsername)
		assert.Equal(t, "100", binding.Balance)
	})

	t.Run("existing binding is returned without a remote call", func(t *testing.T) {
		uc, mocks := newTestUserUsecase(t)
		existing := &domain.ConfidiosBinding{
			UserID:            "user-2",
			ConfidiosUsername: "bob-at-example.com",
			Balance:           "42",
		}

		mocks.bindings.EXPECT().
			Get(gomock.Any(), "user-2").
			Return(existing, nil)

		binding, err := uc.CreateUser(context.Background(), provisionRequest())

		require.NoError(t, err)
		assert.Equal(t, existing, binding)
	})

	t.Run("lost provisioning race returns the winner's binding", func(t *testing.T) {
		uc, mocks := newTestUserUsecase(t)
		winner := &domain.ConfidiosBinding{
			UserID:            "user-2",
			ConfidiosUsername: "bob-at-example.com",
		}

		mocks.bindings.EXPECT().
			Get(gomock.Any(), "user-2").
			Return(nil, domain.ErrBindingNotFound)
		mocks.gateway.EXPECT().
			CreateIdentity(gomock.Any(), "bob-at-example.com", gomock.Any()).
			Return(&domain.ConfidiosSession{Username: "bob-at-example.com", Balance: "100"}, nil)
		mocks.bindings.EXPECT().
			Create(gomock.Any(), "user-2", "bob-at-example.com", "100").
			Return(nil, domain.ErrBindingExists)
		mocks.bindings.EXPECT().
			Get(gomock.Any(), "user-2").
			Return(winner, nil)

		binding, err := uc.CreateUser(context.Background(), provisionRequest())

		require.NoError(t, err)
		assert.Equal(t, winner, binding)
	})

	t.Run("invalid request never reaches the gateway", func(t *testing.T) {
		uc, _ := newTestUserUsecase(t)

		req := provisionRequest()
		req.Email = "not-an-email"

		binding, err := uc.CreateUser(context.Background(), req)

		assert.Error(t, err)
		assert.Nil(t, binding)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		uc, _ := newTestUserUsecase(t)

		req := provisionRequest()
		req.Role = "superuser"

		_, err := uc.CreateUser(context.Background(), req)

		assert.Error(t, err)
	})

	t.Run("remote provisioning failure propagates", func(t *testing.T) {
		uc, mocks := newTestUserUsecase(t)

		mocks.bindings.EXPECT().
			Get(gomock.Any(), "user-2").
			Return(nil, domain.ErrBindingNotFound)
		mocks.gateway.EXPECT().
			CreateIdentity(gomock.Any(), "bob-at-example.com", gomock.Any()).
			Return(nil, domain.ErrRemoteUnreachable)

		_, err := uc.CreateUser(context.Background(), provisionRequest())

		assert.ErrorIs(t, err, domain.ErrRemoteUnreachable)
	})
}

func TestUserUsecase_ListUsers(t *testing.T) {
	uc, mocks := newTestUserUsecase(t)
	expected := []*domain.BindingWithUser{
		{
			ConfidiosBinding: domain.ConfidiosBinding{
				UserID:            "user-1",
				ConfidiosUsername: "alice-at-example.com",
			},
			Name:  "Alice",
			Email: "alice@example.com",
		},
	}

	mocks.bindings.EXPECT().
		ListAll(gomock.Any()).
		Return(expected, nil)

	bindings, err := uc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, bindings)
}

func TestUserUsecase_GetBinding(t *testing.T) {
	t.Run("returns the binding", func(t *testing.T) {
		uc, mocks := newTestUserUsecase(t)
		expected := &domain.ConfidiosBinding{UserID: "user-1", ConfidiosUsername: "alice-at-example.com"}

		mocks.bindings.EXPECT().
			Get(gomock.Any(), "user-1").
			Return(expected, nil)

		binding, err := uc.GetBinding(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, expected, binding)
	})

	t.Run("missing binding propagates", func(t *testing.T) {
		uc, mocks := newTestUserUsecase(t)

		mocks.bindings.EXPECT().
			Get(gomock.Any(), "user-1").
			Return(nil, domain.ErrBindingNotFound)

		_, err := uc.GetBinding(context.Background(), "user-1")

		assert.ErrorIs(t, err, domain.ErrBindingNotFound)
	})
}
