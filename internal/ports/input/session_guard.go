package input

import (
	"context"

	"meal-order-client/internal/domain"
)

// SessionGuard interface - Input port (use case)
// Defines what the client can do with its authentication state and navigation
type SessionGuard interface {
	// Login records principal as the authenticated user. There is no credential check.
	Login(ctx context.Context, principal string) error

	// Logout clears the session.
	Logout(ctx context.Context) error

	// Session returns a snapshot of the current session.
	Session() domain.Session

	// Evaluate decides whether a navigation to destination is allowed.
	Evaluate(destination domain.Destination) domain.Decision

	// Navigate resolves path against the route table and evaluates it.
	Navigate(path string) domain.Decision
}
