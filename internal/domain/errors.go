package domain

import "errors"

var (
	// ErrNotFound means a well-formed identifier matched no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUsername means the signup login key is already taken.
	ErrDuplicateUsername = errors.New("username already in use")
)
