package session

import "errors"

// Session domain errors
var (
	ErrSessionNotFound = errors.New("work session not found")
	ErrSessionExists   = errors.New("a session already exists for this employee and date")
)
