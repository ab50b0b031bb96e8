package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"shipment-dashboard/internal/dto"
	"shipment-dashboard/internal/entities"
	apperrors "shipment-dashboard/pkg/errors"
	"shipment-dashboard/pkg/service"
)

type fakeUserRepo struct {
	users map[string]*entities.User
}

func (r *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*entities.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) FindUserByID(_ context.Context, id uint64) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func newAuthFixture(t *testing.T) (*AuthService, service.JWTService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*entities.User{
		"admin@example.com": {
			ID:       1,
			Fio:      "Админ Админов",
			Email:    "admin@example.com",
			Password: string(hash),
			Role:     "admin",
			IsActive: true,
		},
		"fired@example.com": {
			ID:       2,
			Email:    "fired@example.com",
			Password: string(hash),
			Role:     "viewer",
			IsActive: false,
		},
	}}

	jwtSvc := service.NewJWTService("test-secret", time.Minute, time.Hour, zap.NewNop())
	return NewAuthService(repo, jwtSvc, zap.NewNop()), jwtSvc
}

func TestAuthServiceLogin(t *testing.T) {
	svc, jwtSvc := newAuthFixture(t)

	tokens, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	claims, err := jwtSvc.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.False(t, claims.IsRefreshToken)
}

func TestAuthServiceLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthServiceLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "не раскрываем, существует ли email")
}

func TestAuthServiceLogin_InactiveUser(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "fired@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestAuthServiceRefresh(t *testing.T) {
	svc, jwtSvc := newAuthFixture(t)

	access, refresh, err := jwtSvc.GenerateTokens(1, "admin")
	require.NoError(t, err)

	tokens, err := svc.Refresh(context.Background(), dto.RefreshDTO{RefreshToken: refresh})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	// access-токеном обновляться нельзя
	_, err = svc.Refresh(context.Background(), dto.RefreshDTO{RefreshToken: access})
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
}
