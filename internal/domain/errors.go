package domain

import "errors"

// Exclusion list error types

var (
	// ErrNotConfigured indicates no auto-order record exists for the current user
	ErrNotConfigured = errors.New("no auto-order record found for user, please maintain auto-order settings on the order check page")

	// ErrExpired indicates the auto-order record exists but is past its expire date
	ErrExpired = errors.New("auto-order record has expired, please maintain auto-order settings on the order check page")

	// ErrUpdateFailed indicates the expire date could not be written
	ErrUpdateFailed = errors.New("failed to update expire date, please try again later")
)

// Remote store error types

var (
	// ErrTransport indicates a network failure, a non-2xx status or a rejected envelope from the meal backend
	ErrTransport = errors.New("meal backend request failed")

	// ErrUnauthorized indicates the meal backend answered 401. The session has already been
	// invalidated when a caller sees this error; the call should be treated as abandoned.
	ErrUnauthorized = errors.New("session invalidated by meal backend")
)

// Session and input error types

var (
	// ErrNotAuthenticated indicates a user-scoped operation was attempted without a session
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidRequest indicates an invalid request was made
	ErrInvalidRequest = errors.New("invalid request")
)
