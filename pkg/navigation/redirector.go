package navigation

import (
	"context"
	"sync/atomic"
)

// LoginRedirector reacts to session expiry by clearing locally persisted
// identity state and navigating to the login screen. Redirect is safe to
// invoke from concurrent failing requests: per burst, at most one navigation
// fires, and it no-ops entirely when the login screen is already showing.
//
// Its Redirect method satisfies the transport layer's auth hook signature.
type LoginRedirector struct {
	nav        Navigator
	loginRoute string
	clear      func()
	inFlight   atomic.Bool
}

// RedirectorOption configures a LoginRedirector.
type RedirectorOption func(*LoginRedirector)

// WithLoginRoute overrides the login route. Default is RouteLogin.
func WithLoginRoute(route string) RedirectorOption {
	return func(r *LoginRedirector) {
		if route != "" {
			r.loginRoute = route
		}
	}
}

// WithClearFunc sets the callback that removes the persisted identity
// snapshot. Called on every redirect trigger; clearing is idempotent.
func WithClearFunc(clear func()) RedirectorOption {
	return func(r *LoginRedirector) {
		r.clear = clear
	}
}

// NewLoginRedirector creates a redirector bound to the given navigator.
func NewLoginRedirector(nav Navigator, opts ...RedirectorOption) *LoginRedirector {
	r := &LoginRedirector{
		nav:        nav,
		loginRoute: RouteLogin,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Redirect clears the persisted snapshot and navigates to the login screen.
// Concurrent calls collapse into a single navigation; calls made while the
// login screen is already showing only clear the snapshot.
func (r *LoginRedirector) Redirect(ctx context.Context) {
	if r.clear != nil {
		r.clear()
	}

	current := r.nav.Current()
	if current == r.loginRoute {
		return
	}

	if !r.inFlight.CompareAndSwap(false, true) {
		return
	}

	r.nav.Navigate(r.loginRoute, current)
}

// Settle re-arms the redirector once the triggered navigation has completed.
// The host router calls this when the login screen mounts.
func (r *LoginRedirector) Settle() {
	r.inFlight.Store(false)
}
