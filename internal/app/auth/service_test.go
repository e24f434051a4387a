package auth_test

import (
	"testing"
	"time"

	"github.com/diillson/warehouse-api/internal/app/auth"
	"github.com/diillson/warehouse-api/internal/domain/model"
	"github.com/diillson/warehouse-api/internal/domain/repository"
	"github.com/diillson/warehouse-api/internal/mocks"
	"github.com/diillson/warehouse-api/internal/testutils"
	"github.com/diillson/warehouse-api/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-with-32-characters!!"

func newTestService(t *testing.T, userRepo repository.UserRepository) *auth.Service {
	logger := testutils.TestLogger(t)
	km, err := security.NewKeyManager(testSecret, logger)
	require.NoError(t, err)
	return auth.NewService(km, userRepo, time.Hour, logger)
}

func storedUser(t *testing.T, username, password, role string) *model.UserEntity {
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &model.UserEntity{
		ID:           1,
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
}

func TestService_Authorize(t *testing.T) {
	t.Run("valid credentials return role and token", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newTestService(t, mockRepo)

		entity := storedUser(t, "maria", "s3nh4", "Manager")
		mockRepo.On("GetByUsername", mock.Anything, "maria").Return(entity, nil).Once()

		user, token, err := service.Authorize(ctx, "maria", "s3nh4")

		require.NoError(t, err)
		assert.Equal(t, "Manager", user.Role)
		assert.NotEmpty(t, token)
		mockRepo.AssertExpectations(t)
	})

	t.Run("login is normalized to lowercase", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newTestService(t, mockRepo)

		entity := storedUser(t, "maria", "s3nh4", "Manager")
		mockRepo.On("GetByUsername", mock.Anything, "maria").Return(entity, nil).Once()

		_, _, err := service.Authorize(ctx, "MaRiA", "s3nh4")

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password and unknown user yield the same error", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newTestService(t, mockRepo)

		entity := storedUser(t, "maria", "s3nh4", "Manager")
		mockRepo.On("GetByUsername", mock.Anything, "maria").Return(entity, nil).Once()
		mockRepo.On("GetByUsername", mock.Anything, "fantasma").Return(nil, repository.ErrNotFound).Once()

		_, _, errWrongPassword := service.Authorize(ctx, "maria", "errada")
		_, _, errUnknownUser := service.Authorize(ctx, "fantasma", "qualquer")

		assert.ErrorIs(t, errWrongPassword, auth.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownUser, auth.ErrInvalidCredentials)
		assert.Equal(t, errWrongPassword, errUnknownUser)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_Register(t *testing.T) {
	t.Run("stores lowercased username with hashed password", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newTestService(t, mockRepo)

		mockRepo.On("GetByUsername", mock.Anything, "joao").Return(nil, repository.ErrNotFound).Once()
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
			return u.Username == "joao" &&
				u.Role == "Operator" &&
				u.PasswordHash != "segredo" &&
				auth.VerifyPassword("segredo", u.PasswordHash)
		})).Return(nil).Once()

		user, err := service.Register(ctx, "JoAo", "segredo", "Operator")

		require.NoError(t, err)
		assert.Equal(t, "joao", user.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("existing username is a conflict", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newTestService(t, mockRepo)

		entity := storedUser(t, "joao", "x", "Operator")
		mockRepo.On("GetByUsername", mock.Anything, "joao").Return(entity, nil).Once()

		_, err := service.Register(ctx, "Joao", "segredo", "Operator")

		assert.ErrorIs(t, err, auth.ErrUserExists)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("concurrent duplicate loses to the unique index", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newTestService(t, mockRepo)

		mockRepo.On("GetByUsername", mock.Anything, "joao").Return(nil, repository.ErrNotFound).Once()
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate).Once()

		_, err := service.Register(ctx, "joao", "segredo", "Operator")

		assert.ErrorIs(t, err, auth.ErrUserExists)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_Lookup(t *testing.T) {
	t.Run("applies the same normalization as registration", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newTestService(t, mockRepo)

		entity := storedUser(t, "maria", "x", "Manager")
		mockRepo.On("GetByUsername", mock.Anything, "maria").Return(entity, nil).Once()

		user, err := service.Lookup(ctx, "MARIA")

		require.NoError(t, err)
		assert.Equal(t, "maria", user.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing user is not found, not a fault", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newTestService(t, mockRepo)

		mockRepo.On("GetByUsername", mock.Anything, "fantasma").Return(nil, repository.ErrNotFound).Once()

		_, err := service.Lookup(ctx, "fantasma")

		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})
}

func TestService_ValidateToken(t *testing.T) {
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	mockRepo := new(mocks.MockUserRepository)
	service := newTestService(t, mockRepo)

	entity := storedUser(t, "maria", "s3nh4", "Manager")
	mockRepo.On("GetByUsername", mock.Anything, "maria").Return(entity, nil).Once()
	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(entity, nil).Once()

	_, token, err := service.Authorize(ctx, "maria", "s3nh4")
	require.NoError(t, err)

	user, err := service.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "maria", user.Username)

	_, err = service.ValidateToken(ctx, "token-invalido")
	assert.Error(t, err)
}

func TestService_IsAdmin(t *testing.T) {
	service := newTestService(t, new(mocks.MockUserRepository))

	assert.True(t, service.IsAdmin(&model.User{Role: "Admin"}))
	assert.True(t, service.IsAdmin(&model.User{Role: "admin"}))
	assert.False(t, service.IsAdmin(&model.User{Role: "Operator"}))
	assert.False(t, service.IsAdmin(nil))
}
