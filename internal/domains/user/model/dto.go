package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoginRequest is the credentials payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse carries the signed token plus the identity the console
// shows in its header bar.
type LoginResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// VerifyResponse echoes the identity baked into a still-valid token.
type VerifyResponse struct {
	Valid bool       `json:"valid"`
	User  PublicUser `json:"user"`
}

// ChangePasswordRequest is the payload for PUT /api/auth/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(6, 72)),
	)
}
