package tui

import "errors"

// ErrMissingAnagramService is returned when the anagram service is not provided.
var ErrMissingAnagramService = errors.New("tui: anagram service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
