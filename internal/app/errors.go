package app

import "fmt"

// UsageError marks a malformed invocation. Nothing has been written when it is returned.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Usagef builds a UsageError.
func Usagef(format string, args ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// RenderError is a failure to produce one team's logo.
type RenderError struct {
	TeamID string
	Err    error
}

func (e *RenderError) Error() string { return fmt.Sprintf("render %s: %v", e.TeamID, e.Err) }

func (e *RenderError) Unwrap() error { return e.Err }
