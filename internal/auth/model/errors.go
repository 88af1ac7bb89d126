package model

import "errors"

var (
	// ErrUnauthenticated indicates that the credentials could not be verified.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidEmail indicates that the provided email is malformed.
	ErrInvalidEmail = errors.New("invalid email")
)
