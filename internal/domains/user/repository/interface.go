package repository

import (
	"context"

	"landing-cms-backend/internal/domains/user/model"
)

// Store is the persistence surface for admin accounts.
type Store interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
