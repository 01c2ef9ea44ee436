package user

import "errors"

// Account-related errors
var (
	// Validation errors
	ErrFullNameRequired = errors.New("full name is required")
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Business logic errors
	ErrDuplicateAccount   = errors.New("account with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid email/username or password")
	ErrNotSignedIn        = errors.New("not signed in")
)
