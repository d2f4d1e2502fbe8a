// Package service contains the service layer for the Wellness Sessions API
package service

import "errors"

// Error taxonomy surfaced to the API boundary. Anything not matching one of
// these is treated as an internal failure. Note that a session owned by
// another user surfaces as ErrNotFound, never as a distinct forbidden error,
// so callers cannot probe for the existence of other users' sessions.
var (
	ErrConflict        = errors.New("resource already exists")
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidArgument = errors.New("invalid argument")
)
