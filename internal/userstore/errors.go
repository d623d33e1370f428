// Package userstore holds the error taxonomy shared by all credential store
// implementations.
package userstore

import "errors"

var (
	// ErrDuplicateUsername is returned by Create when the username is taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrNotFound is returned by FindByUsername when no user matches.
	ErrNotFound = errors.New("user not found")
)
