package model

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrTooManyAttempts    = errors.New("Too many failed login attempts, try again later")
	ErrPasswordMismatch   = errors.New("Current password is incorrect")
)
