package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"landing-cms-backend/internal/domains/user/model"
	"landing-cms-backend/internal/domains/user/repository"
	"landing-cms-backend/pkg/jwt"
	"landing-cms-backend/pkg/limiter"
)

const bcryptCost = 12

type userService struct {
	repo    repository.Store
	jwt     *jwt.Manager
	limiter *limiter.LoginLimiter
}

func NewUserService(repo repository.Store, jwtManager *jwt.Manager, loginLimiter *limiter.LoginLimiter) Service {
	return &userService{
		repo:    repo,
		jwt:     jwtManager,
		limiter: loginLimiter,
	}
}

// Login checks credentials and issues a signed token. An unknown username
// and a wrong password produce the same error, and both count against the
// per-account attempt limiter.
func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !s.limiter.Allow(ctx, req.Username) {
		return nil, model.ErrTooManyAttempts
	}

	user, err := s.repo.FindByUsername(ctx, req.Username)
	if errors.Is(err, model.ErrUserNotFound) {
		s.limiter.RecordFailure(ctx, req.Username)
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.limiter.RecordFailure(ctx, req.Username)
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.limiter.Reset(ctx, req.Username)

	return &model.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	}, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *userService) ChangePassword(ctx context.Context, userID int64, req model.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return model.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, user.ID, string(hash))
}
