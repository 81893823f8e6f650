// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import "errors"

var (
	// ErrEmptyDirective is returned when a filter directive holds no items.
	ErrEmptyDirective = errors.New("empty filter directive")
	// ErrInvalidLevel is returned when a directive names an unknown level.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrInvalidNamespace is returned when a directive item has an empty or malformed namespace.
	ErrInvalidNamespace = errors.New("invalid log namespace")
	// ErrAlreadyInstalled is returned when a registry already holds a logger.
	ErrAlreadyInstalled = errors.New("logger already installed")
)

// Ensure DirectiveError implements the error interface.
var _ error = &DirectiveError{}

// DirectiveError reports the directive item that could not be parsed.
type DirectiveError struct {
	Item string
	err  error
}

func (e *DirectiveError) Error() string {
	return e.err.Error() + ": " + `"` + e.Item + `"`
}

func (e *DirectiveError) Unwrap() error {
	return e.err
}
