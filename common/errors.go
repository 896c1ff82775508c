// Package common provides shared constants, types, and utilities
// used across rfkill-panel.
package common

import "errors"

// Sentinel errors. Check them with errors.Is().
var (
	// Radio errors.
	ErrUnknownClass  = errors.New("unknown radio class")
	ErrNoDevice      = errors.New("radio device not found")
	ErrCommandFailed = errors.New("rfkill command failed")

	// Startup errors.
	ErrStylesheet  = errors.New("failed to load stylesheet")
	ErrNotTerminal = errors.New("not running in a terminal")

	// Configuration errors.
	ErrConfigLoad  = errors.New("failed to load configuration")
	ErrConfigSave  = errors.New("failed to save configuration")
	ErrInvalidConf = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
