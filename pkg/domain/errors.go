package domain

import "errors"

// ErrUnsupportedAlgorithm is returned when no generator exists for an algorithm id.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// ErrGeneratorNotLoaded is returned when a known algorithm has no registered generator.
var ErrGeneratorNotLoaded = errors.New("generator not loaded")

// ErrInvalidInput is returned when request data cannot be decoded.
var ErrInvalidInput = errors.New("invalid input")

// ErrInputTooLarge is returned when an input array exceeds the configured bound.
var ErrInputTooLarge = errors.New("input too large")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")
