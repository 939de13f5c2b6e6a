// Package navigation abstracts the host UI's router so transport and
// route-guard code can trigger screen changes without knowing how views are
// rendered. It also provides an idempotent login redirector for the global
// session-expiry side effect.
package navigation

// Default application routes.
const (
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteDashboard = "/dashboard"
)

// Navigator is implemented by the host application's router.
type Navigator interface {
	// Current returns the path of the screen being displayed.
	Current() string

	// Navigate replaces the current screen with the given route. returnTo,
	// when non-empty, carries the originally requested path so a later
	// successful login can restore it.
	Navigate(to, returnTo string)
}
