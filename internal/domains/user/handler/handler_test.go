package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing-cms-backend/internal/domains/user/model"
	"landing-cms-backend/internal/shared/middleware"
	"landing-cms-backend/pkg/jwt"
)

type fakeUserService struct {
	loginErr  error
	changeErr error

	changedFor int64
}

func (f *fakeUserService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &model.LoginResponse{
		Message: "Login successful",
		Token:   "signed-token",
		User:    model.PublicUser{ID: 1, Username: req.Username, Role: "admin"},
	}, nil
}

func (f *fakeUserService) ChangePassword(ctx context.Context, userID int64, req model.ChangePasswordRequest) error {
	if f.changeErr != nil {
		return f.changeErr
	}
	f.changedFor = userID
	return nil
}

func setupAuthRouter(t *testing.T, svc *fakeUserService) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := jwt.NewManager("test-secret", 1)
	token, err := manager.GenerateToken(7, "admin", "admin")
	require.NoError(t, err)

	h := NewUserHandler(svc)

	router := gin.New()
	auth := router.Group("/api/auth")
	auth.POST("/login", h.Login)
	auth.GET("/verify", middleware.AuthMiddleware(manager), h.Verify)
	auth.PUT("/password", middleware.AuthMiddleware(manager), h.ChangePassword)

	return router, token
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	router, _ := setupAuthRouter(t, &fakeUserService{})

	w := doRequest(router, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body model.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "signed-token", body.Token)
	assert.Equal(t, "admin", body.User.Username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, _ := setupAuthRouter(t, &fakeUserService{loginErr: model.ErrInvalidCredentials})

	w := doRequest(router, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestLogin_Throttled(t *testing.T) {
	router, _ := setupAuthRouter(t, &fakeUserService{loginErr: model.ErrTooManyAttempts})

	w := doRequest(router, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestVerify(t *testing.T) {
	router, token := setupAuthRouter(t, &fakeUserService{})

	w := doRequest(router, http.MethodGet, "/api/auth/verify", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body model.VerifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Valid)
	assert.Equal(t, int64(7), body.User.ID)
	assert.Equal(t, "admin", body.User.Username)
}

func TestVerify_NoToken(t *testing.T) {
	router, _ := setupAuthRouter(t, &fakeUserService{})

	w := doRequest(router, http.MethodGet, "/api/auth/verify", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword(t *testing.T) {
	svc := &fakeUserService{}
	router, token := setupAuthRouter(t, svc)

	w := doRequest(router, http.MethodPut, "/api/auth/password", token,
		`{"currentPassword":"admin123","newPassword":"stronger-secret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), svc.changedFor, "password changes for the token's user")
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	router, token := setupAuthRouter(t, &fakeUserService{changeErr: model.ErrPasswordMismatch})

	w := doRequest(router, http.MethodPut, "/api/auth/password", token,
		`{"currentPassword":"nope","newPassword":"stronger-secret"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
