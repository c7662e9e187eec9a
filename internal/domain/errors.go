package domain

import "errors"

// Sentinel errors returned by stores and flows. The API layer maps these to
// HTTP statuses; raw storage errors never cross that boundary.
var (
	ErrNotFound       = errors.New("record not found")
	ErrUsernameTaken  = errors.New("username already exists")
	ErrAlreadyExists  = errors.New("record already exists")
	ErrBadCredentials = errors.New("invalid credentials")
)
