// Package guard decides, on every page load, whether the requested view may
// be shown for the current session state or must redirect.
package guard

import (
	"net/http"

	"go.uber.org/zap"
)

// State is the navigation state of one browser tab
type State int

// Navigation states
const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Event moves a tab between states
type Event int

// Navigation events
const (
	Login Event = iota
	Logout
	SessionCleared
)

// Next returns the state reached from s on event e
func (s State) Next(e Event) State {
	switch e {
	case Login:
		return Authenticated
	case Logout, SessionCleared:
		return Unauthenticated
	}
	return s
}

// Guard maps protected paths to the login view and the login view to the
// shop for tabs that are already signed in.
type Guard struct {
	loginPaths map[string]bool
	loginPath  string
	homePath   string
	protected  map[string]bool
}

// New creates a guard. loginPaths are the paths that render the login view;
// the first one is the redirect target for unauthenticated access.
func New(loginPaths []string, homePath string, protected ...string) *Guard {
	g := &Guard{
		loginPaths: make(map[string]bool, len(loginPaths)),
		homePath:   homePath,
		protected:  make(map[string]bool, len(protected)),
	}
	for _, p := range loginPaths {
		g.loginPaths[p] = true
	}
	if len(loginPaths) > 0 {
		g.loginPath = loginPaths[0]
	}
	for _, p := range protected {
		g.protected[p] = true
	}
	return g
}

// Decide returns the redirect target for path in state, or ok=true when the
// view may be rendered as requested.
func (g *Guard) Decide(path string, state State) (redirect string, ok bool) {
	switch {
	case state == Unauthenticated && g.protected[path]:
		return g.loginPath, false
	case state == Authenticated && g.loginPaths[path]:
		return g.homePath, false
	}
	return "", true
}

// Middleware evaluates stateOf for each request and redirects when Decide
// says so. Only GET requests to the login view bounce to the shop so a
// login form submission still reaches its handler.
func (g *Guard) Middleware(next http.Handler, stateOf func(*http.Request) State) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := stateOf(r)
		redirect, ok := g.Decide(r.URL.Path, state)
		if !ok && (g.protected[r.URL.Path] || r.Method == http.MethodGet) {
			zap.S().Debugw("guard redirect", "path", r.URL.Path, "state", state.String(), "to", redirect)
			http.Redirect(w, r, redirect, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
