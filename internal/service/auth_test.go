package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/mocks"
	"github.com/brewops/cafe-service/internal/service"
)

func newTestTokenService(tokenRepo *mocks.MockTokensRepositoryInterface) service.TokenService {
	return service.NewTokenService(tokenRepo, service.TokenConfig{
		SecretKey:        "test-secret-key",
		RefreshSecretKey: "test-refresh-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  24 * time.Hour,
	})
}

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &model.User{
		ID:       primitive.NewObjectID(),
		Email:    "owner@kopikita.id",
		Password: string(hash),
		Name:     "Owner",
		Role:     model.RoleOwner,
		Active:   true,
	}
}

func TestAuthService_Login(t *testing.T) {
	user := activeUser(t, "password123")

	t.Run("successful login", func(t *testing.T) {
		userRepo := new(mocks.MockUsersRepositoryInterface)
		userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		tokenRepo := new(mocks.MockTokensRepositoryInterface)
		tokenRepo.On("DeleteByUserID", mock.Anything, user.ID, "refresh").Return(nil)
		tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := service.NewAuthServiceWithTokenService(userRepo, newTestTokenService(tokenRepo))
		pair, loggedIn, err := svc.Login(context.Background(), user.Email, "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, int64((15 * time.Minute).Seconds()), pair.ExpiresIn)
		assert.Equal(t, user.Email, loggedIn.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mocks.MockUsersRepositoryInterface)
		userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		svc := service.NewAuthServiceWithTokenService(userRepo, newTestTokenService(new(mocks.MockTokensRepositoryInterface)))
		_, _, err := svc.Login(context.Background(), user.Email, "wrong")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(mocks.MockUsersRepositoryInterface)
		userRepo.On("FindByEmail", mock.Anything, "nobody@kopikita.id").Return(nil, nil)

		svc := service.NewAuthServiceWithTokenService(userRepo, newTestTokenService(new(mocks.MockTokensRepositoryInterface)))
		_, _, err := svc.Login(context.Background(), "nobody@kopikita.id", "password123")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		inactive := *user
		inactive.Active = false

		userRepo := new(mocks.MockUsersRepositoryInterface)
		userRepo.On("FindByEmail", mock.Anything, user.Email).Return(&inactive, nil)

		svc := service.NewAuthServiceWithTokenService(userRepo, newTestTokenService(new(mocks.MockTokensRepositoryInterface)))
		_, _, err := svc.Login(context.Background(), user.Email, "password123")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("defaults to barista", func(t *testing.T) {
		userRepo := new(mocks.MockUsersRepositoryInterface)
		userRepo.On("FindByEmail", mock.Anything, "ayu@kopikita.id").Return(nil, nil)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// ID must be set by Create for token generation to work.
			u.ID = primitive.NewObjectID()
			return u.Role == model.RoleBarista && u.Active
		})).Return(nil)

		tokenRepo := new(mocks.MockTokensRepositoryInterface)
		tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := service.NewAuthServiceWithTokenService(userRepo, newTestTokenService(tokenRepo))
		pair, user, err := svc.Register(context.Background(), "ayu@kopikita.id", "password123", "Ayu", "")

		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.Equal(t, model.RoleBarista, user.Role)
		// Password is stored hashed.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	})

	t.Run("existing email", func(t *testing.T) {
		userRepo := new(mocks.MockUsersRepositoryInterface)
		userRepo.On("FindByEmail", mock.Anything, "owner@kopikita.id").Return(&model.User{}, nil)

		svc := service.NewAuthServiceWithTokenService(userRepo, newTestTokenService(new(mocks.MockTokensRepositoryInterface)))
		_, _, err := svc.Register(context.Background(), "owner@kopikita.id", "password123", "", "")

		assert.ErrorIs(t, err, service.ErrUserExists)
	})

	t.Run("unknown role", func(t *testing.T) {
		userRepo := new(mocks.MockUsersRepositoryInterface)
		userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, nil)

		svc := service.NewAuthServiceWithTokenService(userRepo, newTestTokenService(new(mocks.MockTokensRepositoryInterface)))
		_, _, err := svc.Register(context.Background(), "x@kopikita.id", "password123", "", "admin")

		assert.EqualError(t, err, "role: role must be owner or barista")
	})
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	user := activeUser(t, "password123")

	tokenRepo := new(mocks.MockTokensRepositoryInterface)
	tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	tokenRepo.On("IsBlacklisted", mock.Anything, mock.Anything).Return(false, nil)

	svc := newTestTokenService(tokenRepo)

	pair, err := svc.GenerateTokenPair(context.Background(), user)
	assert.NoError(t, err)

	claims, err := svc.ValidateAccessToken(context.Background(), pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, model.RoleOwner, claims.Role)

	// Refresh token is signed with a different key.
	_, err = svc.ValidateAccessToken(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	refreshClaims, err := svc.ValidateRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.UserID)
}

func TestTokenService_GenerateTokenPair_ZeroUserID(t *testing.T) {
	svc := newTestTokenService(new(mocks.MockTokensRepositoryInterface))

	_, err := svc.GenerateTokenPair(context.Background(), &model.User{})
	assert.Error(t, err)
}

func TestTokenService_ValidateAccessToken_Blacklisted(t *testing.T) {
	tokenRepo := new(mocks.MockTokensRepositoryInterface)
	tokenRepo.On("IsBlacklisted", mock.Anything, "some-token").Return(true, nil)

	svc := newTestTokenService(tokenRepo)
	_, err := svc.ValidateAccessToken(context.Background(), "some-token")

	assert.ErrorIs(t, err, service.ErrTokenBlacklisted)
}

func TestTokenService_ValidateAccessToken_Garbage(t *testing.T) {
	tokenRepo := new(mocks.MockTokensRepositoryInterface)
	tokenRepo.On("IsBlacklisted", mock.Anything, mock.Anything).Return(false, nil)

	svc := newTestTokenService(tokenRepo)
	_, err := svc.ValidateAccessToken(context.Background(), "not.a.jwt")

	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_RefreshToken_Rotation(t *testing.T) {
	user := activeUser(t, "password123")

	tokenRepo := new(mocks.MockTokensRepositoryInterface)
	tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	tokenSvc := newTestTokenService(tokenRepo)

	pair, err := tokenSvc.GenerateTokenPair(context.Background(), user)
	assert.NoError(t, err)

	tokenRepo.On("FindByToken", mock.Anything, pair.RefreshToken).Return(&model.Token{
		UserID:    user.ID,
		Token:     pair.RefreshToken,
		Type:      "refresh",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}, nil)
	tokenRepo.On("DeleteByToken", mock.Anything, pair.RefreshToken).Return(nil)

	userRepo := new(mocks.MockUsersRepositoryInterface)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	svc := service.NewAuthServiceWithTokenService(userRepo, tokenSvc)
	newPair, err := svc.RefreshToken(context.Background(), pair.RefreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, newPair.AccessToken)
	tokenRepo.AssertCalled(t, "DeleteByToken", mock.Anything, pair.RefreshToken)
}

func TestAuthService_RefreshToken_UnknownToken(t *testing.T) {
	user := activeUser(t, "password123")

	tokenRepo := new(mocks.MockTokensRepositoryInterface)
	tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	tokenSvc := newTestTokenService(tokenRepo)

	pair, err := tokenSvc.GenerateTokenPair(context.Background(), user)
	assert.NoError(t, err)

	// Valid signature but not stored: already rotated or revoked.
	tokenRepo.On("FindByToken", mock.Anything, pair.RefreshToken).Return(nil, nil)

	svc := service.NewAuthServiceWithTokenService(new(mocks.MockUsersRepositoryInterface), tokenSvc)
	_, err = svc.RefreshToken(context.Background(), pair.RefreshToken)

	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_Logout(t *testing.T) {
	user := activeUser(t, "password123")

	tokenRepo := new(mocks.MockTokensRepositoryInterface)
	tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	tokenRepo.On("DeleteByToken", mock.Anything, mock.Anything).Return(nil)
	tokenSvc := newTestTokenService(tokenRepo)

	pair, err := tokenSvc.GenerateTokenPair(context.Background(), user)
	assert.NoError(t, err)

	svc := service.NewAuthServiceWithTokenService(new(mocks.MockUsersRepositoryInterface), tokenSvc)
	err = svc.Logout(context.Background(), pair.AccessToken, pair.RefreshToken)

	assert.NoError(t, err)
	// Access token was blacklisted, refresh token deleted.
	tokenRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(tok *model.Token) bool {
		return tok.Type == "blacklist"
	}))
	tokenRepo.AssertCalled(t, "DeleteByToken", mock.Anything, pair.RefreshToken)
}
