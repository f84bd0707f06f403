// Package login provides HTTP handlers for admin authentication.
//
// This file defines exported error values used throughout the login flow.
package login

import "errors"

var (
	// ErrInvalidFormData is returned when the submitted login form cannot be parsed.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInvalidCredentials is returned when the provided email and/or password
	// are not valid.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive is returned when the account exists but is disabled.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrUnauthorizedUser is returned when the credentials check out but the
	// authenticated identity is not the configured admin user.
	ErrUnauthorizedUser = errors.New("unauthorized user")

	// ErrTooManyAttempts is returned when the per-IP login rate limit is hit.
	ErrTooManyAttempts = errors.New("too many login attempts, try again later")

	// ErrInternalServerError is returned for unexpected failures during login.
	ErrInternalServerError = errors.New("internal server error")
)
