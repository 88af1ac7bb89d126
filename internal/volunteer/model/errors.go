package model

import "errors"

var (
	// ErrEmptyCode indicates that the secret code to bind is empty.
	ErrEmptyCode = errors.New("secret code cannot be empty")
	// ErrNoBinding indicates that the volunteer has no bound secret code.
	ErrNoBinding = errors.New("no secret code bound to this session")
)
