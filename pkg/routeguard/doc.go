// Package routeguard gates rendering of protected views based on session
// state and per-route role requirements.
//
// Each navigation attempt resolves to one of four decisions: checking (the
// startup profile fetch has not settled, render a loading indicator),
// denied-unauthenticated (redirect to login carrying the requested path),
// denied-role (redirect to the dashboard and surface a permission notice),
// or allowed (render the view). Checking is the only non-terminal decision;
// it resolves as soon as the session store leaves its loading state.
//
// Public-only routes (login, register) invert the check: an authenticated
// user is sent to the dashboard instead of seeing the form.
package routeguard
