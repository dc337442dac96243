package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these to HTTP status codes.
var (
	// ErrNotFound is returned when an operation targets a record that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when credentials are missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidInput is returned when a request is structurally valid but semantically not allowed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownSectionType is returned when a page section carries a type the
	// renderer dispatch does not know. Unknown types are an explicit error, not
	// a silent empty render.
	ErrUnknownSectionType = errors.New("unknown section type")
)
