// Package common defines sentinel errors shared by the client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors (user-correctable, nothing is mutated).
	ErrMissingFields = errors.New("missing required fields")

	// Navigation errors.
	ErrAccessDenied  = errors.New("registration required")
	ErrUnknownScreen = errors.New("unknown screen")

	// Registration lifecycle.
	ErrAlreadyRegistered = errors.New("profile already registered")

	// Storage errors.
	ErrUnknownSlot = errors.New("unknown storage slot")

	// Media errors.
	ErrNotAnImage = errors.New("file is not an image")
)
