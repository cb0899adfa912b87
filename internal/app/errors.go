// Package app holds the application services and business logic.
package app

import "errors"

var (
	// ErrInvalidParameter indicates a malformed numeric input to a calculation.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrData indicates missing or inconsistent user data.
	ErrData = errors.New("data error")
)
