package service

import (
	"context"

	"landing-cms-backend/internal/domains/user/model"
)

// Service handles admin authentication and account maintenance.
type Service interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	ChangePassword(ctx context.Context, userID int64, req model.ChangePasswordRequest) error
}
