package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAdminOnly          = errors.New("admin privilege required")
	ErrForbidden          = errors.New("not allowed to access this resource")
)
