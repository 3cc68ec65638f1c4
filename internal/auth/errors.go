package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown employee ids and wrong
	// passwords; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid employee id or password")
)
