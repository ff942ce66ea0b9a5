package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"meal-order-client/internal/domain"
	"meal-order-client/internal/ports/input"
	"meal-order-client/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Keys under which the session is persisted
const (
	SessionKeyPrincipal     = "token"
	SessionKeyAuthenticated = "isLoggedIn"
)

// Compile-time check to ensure SessionGuard implements the input port
var _ input.SessionGuard = (*SessionGuard)(nil)

// PrincipalSource is the session context handed to user-scoped services.
// Principal fails with domain.ErrNotAuthenticated while the session is anonymous.
type PrincipalSource interface {
	Principal() (string, error)
}

// SessionGuard struct - Application service owning the session state machine.
// State is kept in memory and written through to the SessionStore; navigation
// decisions read only the in-memory copy so they never block.
type SessionGuard struct {
	store output.SessionStore

	mu      sync.RWMutex
	session domain.Session

	listenersMu sync.Mutex
	listeners   []func(domain.Decision)
}

// NewSessionGuard func - Creates a session guard in the Anonymous state
func NewSessionGuard(store output.SessionStore) *SessionGuard {
	return &SessionGuard{
		store: store,
	}
}

// Restore loads the persisted session. A state where only one of the two keys
// survived is treated as anonymous and cleared.
func (g *SessionGuard) Restore(ctx context.Context) error {
	principal, hasPrincipal, err := g.store.Get(ctx, SessionKeyPrincipal)
	if err != nil {
		return fmt.Errorf("failed to read persisted principal: %w", err)
	}
	flag, hasFlag, err := g.store.Get(ctx, SessionKeyAuthenticated)
	if err != nil {
		return fmt.Errorf("failed to read persisted login flag: %w", err)
	}

	restored := domain.Session{Principal: principal, Authenticated: hasFlag && flag == "true"}
	if !hasPrincipal || !restored.IsAuthenticated() {
		if hasPrincipal || hasFlag {
			logrus.Warn("Discarding partially persisted session")
			if err := g.store.Clear(ctx); err != nil {
				return fmt.Errorf("failed to clear partial session: %w", err)
			}
		}
		restored = domain.Session{}
	}

	g.mu.Lock()
	g.session = restored
	g.mu.Unlock()

	logrus.Infof("Session restored, state: %s", restored.State())
	return nil
}

// Login moves the guard to Authenticated. There is no credential check against
// the meal backend: the token is the identifier the user typed.
func (g *SessionGuard) Login(ctx context.Context, principal string) error {
	principal = strings.TrimSpace(principal)
	if principal == "" {
		return fmt.Errorf("%w: username is required", domain.ErrInvalidRequest)
	}

	if err := g.store.Set(ctx, SessionKeyPrincipal, principal); err != nil {
		return fmt.Errorf("failed to persist principal: %w", err)
	}
	if err := g.store.Set(ctx, SessionKeyAuthenticated, "true"); err != nil {
		if clearErr := g.store.Clear(ctx); clearErr != nil {
			logrus.Errorf("Failed to roll back partial login: %v", clearErr)
		}
		return fmt.Errorf("failed to persist login flag: %w", err)
	}

	g.mu.Lock()
	g.session = domain.Session{Principal: principal, Authenticated: true}
	g.mu.Unlock()

	logrus.Infof("User logged in: %s", principal)
	return nil
}

// Logout moves the guard to Anonymous and clears the persisted session
func (g *SessionGuard) Logout(ctx context.Context) error {
	g.reset()
	if err := g.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logrus.Info("User logged out")
	return nil
}

// UnauthorizedResponse handles a 401 from the meal backend: the session is
// cleared whatever its state and every listener is told to go to the login view.
func (g *SessionGuard) UnauthorizedResponse(ctx context.Context) {
	g.reset()
	if err := g.store.Clear(ctx); err != nil {
		logrus.Errorf("Failed to clear session after unauthorized response: %v", err)
	}
	logrus.Warn("Meal backend rejected the session, redirecting to login")

	g.listenersMu.Lock()
	listeners := make([]func(domain.Decision), len(g.listeners))
	copy(listeners, g.listeners)
	g.listenersMu.Unlock()

	decision := domain.RedirectTo(domain.LoginPath)
	for _, listener := range listeners {
		listener(decision)
	}
}

// OnForcedRedirect registers fn to be called when the session is invalidated
func (g *SessionGuard) OnForcedRedirect(fn func(domain.Decision)) {
	g.listenersMu.Lock()
	defer g.listenersMu.Unlock()
	g.listeners = append(g.listeners, fn)
}

// Session returns a snapshot of the current session
func (g *SessionGuard) Session() domain.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session
}

// Principal returns the authenticated user's identifier
func (g *SessionGuard) Principal() (string, error) {
	session := g.Session()
	if !session.IsAuthenticated() {
		return "", domain.ErrNotAuthenticated
	}
	return session.Principal, nil
}

// Evaluate applies the navigation guard to destination:
// anonymous users are sent to login from protected views, authenticated
// users are sent home from the login view, everything else is allowed.
func (g *SessionGuard) Evaluate(destination domain.Destination) domain.Decision {
	authenticated := g.Session().IsAuthenticated()

	if destination.RequiresAuth && !authenticated {
		return domain.RedirectTo(domain.LoginPath)
	}
	if destination.IsLogin() && authenticated {
		return domain.RedirectTo(domain.HomePath)
	}
	return domain.Allow()
}

// Navigate resolves path against the route table and evaluates the result.
// Unknown paths are allowed so the view layer can render its own not-found page.
func (g *SessionGuard) Navigate(path string) domain.Decision {
	route, ok := domain.ResolveRoute(path)
	if !ok {
		decision := g.Evaluate(domain.Destination{Path: path})
		logrus.Debugf("Navigation to unknown path %s: %s", path, decision.Action)
		return decision
	}
	if route.Redirect != nil {
		return domain.RedirectTo(route.Redirect(g.Session().IsAuthenticated()))
	}

	decision := g.Evaluate(route.Destination)
	logrus.Debugf("Navigation to %s: %s %s", route.Path, decision.Action, decision.Location)
	return decision
}

func (g *SessionGuard) reset() {
	g.mu.Lock()
	g.session = domain.Session{}
	g.mu.Unlock()
}
