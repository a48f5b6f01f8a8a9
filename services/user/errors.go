package user

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on failed login. Deliberately vague:
	// it does not reveal whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when the account does not exist.
	ErrUserNotFound = errors.New("user not found")
)
