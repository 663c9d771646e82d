package internal

import "errors"

var (
	// ErrInvalidCredentials is returned by login for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserExists is returned by registration when the username or email is taken.
	ErrUserExists = errors.New("user with this email or username already exists")
)

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=4,max=32"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=32"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
	Terms           bool   `json:"terms" validate:"accepted"`
}

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=32"`
}
