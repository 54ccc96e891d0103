package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"landing-cms-backend/internal/domains/user/model"
	"landing-cms-backend/pkg/jwt"
)

type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore(t *testing.T, username, password string) *fakeUserStore {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &fakeUserStore{users: map[string]*model.User{
		username: {
			ID:           1,
			Username:     username,
			PasswordHash: string(hash),
			Role:         "admin",
		},
	}}
}

func (f *fakeUserStore) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id int64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return model.ErrUserNotFound
}

func newTestService(t *testing.T) (Service, *fakeUserStore, *jwt.Manager) {
	t.Helper()

	store := newFakeUserStore(t, "admin", "admin123")
	manager := jwt.NewManager("test-secret", 1)
	// nil limiter disables throttling, matching a redis-less deployment
	return NewUserService(store, manager, nil), store, manager
}

func TestLogin_Success(t *testing.T) {
	svc, _, manager := newTestService(t)

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)

	claims, err := manager.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "admin",
		Password: "nope",
	})
	assert.True(t, errors.Is(err, model.ErrInvalidCredentials))
}

func TestLogin_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "ghost",
		Password: "admin123",
	})
	assert.True(t, errors.Is(err, model.ErrInvalidCredentials),
		"unknown usernames must not be distinguishable from bad passwords")
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), model.LoginRequest{Username: "admin"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), model.LoginRequest{Password: "admin123"})
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, 1, model.ChangePasswordRequest{
		CurrentPassword: "admin123",
		NewPassword:     "stronger-secret",
	})
	require.NoError(t, err)

	// Old password no longer works, new one does.
	_, err = svc.Login(ctx, model.LoginRequest{Username: "admin", Password: "admin123"})
	assert.True(t, errors.Is(err, model.ErrInvalidCredentials))

	resp, err := svc.Login(ctx, model.LoginRequest{Username: "admin", Password: "stronger-secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	hash := store.users["admin"].PasswordHash
	assert.NotEqual(t, "stronger-secret", hash, "passwords are stored hashed")
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.ChangePassword(context.Background(), 1, model.ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "stronger-secret",
	})
	assert.True(t, errors.Is(err, model.ErrPasswordMismatch))
}

func TestChangePassword_TooShort(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.ChangePassword(context.Background(), 1, model.ChangePasswordRequest{
		CurrentPassword: "admin123",
		NewPassword:     "abc",
	})
	assert.Error(t, err)
}

func TestChangePassword_UnknownUser(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.ChangePassword(context.Background(), 99, model.ChangePasswordRequest{
		CurrentPassword: "admin123",
		NewPassword:     "stronger-secret",
	})
	assert.True(t, errors.Is(err, model.ErrUserNotFound))
}
