package routeguard

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Adnan7389/Compliance-Tracker-client/pkg/navigation"
	"github.com/Adnan7389/Compliance-Tracker-client/pkg/session"
)

// Decision is the outcome of evaluating one navigation attempt.
type Decision string

const (
	// DecisionChecking means the session state is unresolved; render a
	// neutral loading indicator, no redirect yet.
	DecisionChecking Decision = "checking"
	// DecisionDeniedUnauth means the visitor is not signed in; redirect to
	// login carrying the requested path.
	DecisionDeniedUnauth Decision = "denied_unauthenticated"
	// DecisionDeniedRole means the identity lacks a required role; redirect
	// to the dashboard with a permission notice.
	DecisionDeniedRole Decision = "denied_role"
	// DecisionDeniedPublicOnly means an authenticated user requested a
	// public-only screen (login, register); redirect to the dashboard.
	DecisionDeniedPublicOnly Decision = "denied_public_only"
	// DecisionAllowed means the requested view renders.
	DecisionAllowed Decision = "allowed"
)

// SessionState is the read-only slice of the session store the guard needs.
// *session.Store satisfies it; the guard never writes session state.
type SessionState interface {
	Loading() session.LoadingState
	IsAuthenticated() bool
	Identity() (session.Identity, bool)
}

// Notifier surfaces user-facing notices. The host UI's toast system
// implements it.
type Notifier interface {
	Error(message string)
}

// Guard resolves navigation attempts against the session store and the
// route table, performing redirect and notice side effects at most once per
// denial rather than on every render.
type Guard struct {
	session  SessionState
	nav      navigation.Navigator
	notifier Notifier
	routes   RouteTable

	loginRoute     string
	dashboardRoute string

	mu          sync.Mutex
	lastOutcome string // path + decision of the last side-effecting denial
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithNotifier sets the permission-notice sink. Without one, denials still
// redirect but surface no message.
func WithNotifier(n Notifier) GuardOption {
	return func(g *Guard) {
		if n != nil {
			g.notifier = n
		}
	}
}

// WithRouteTable replaces the default route table.
func WithRouteTable(table RouteTable) GuardOption {
	return func(g *Guard) {
		if table != nil {
			g.routes = table
		}
	}
}

// WithLoginRoute overrides the login redirect target.
func WithLoginRoute(route string) GuardOption {
	return func(g *Guard) {
		if route != "" {
			g.loginRoute = route
		}
	}
}

// WithDashboardRoute overrides the default authenticated landing route.
func WithDashboardRoute(route string) GuardOption {
	return func(g *Guard) {
		if route != "" {
			g.dashboardRoute = route
		}
	}
}

// New creates a guard reading from the given session state and redirecting
// through the given navigator.
func New(state SessionState, nav navigation.Navigator, opts ...GuardOption) *Guard {
	g := &Guard{
		session:        state,
		nav:            nav,
		routes:         DefaultRouteTable(),
		loginRoute:     navigation.RouteLogin,
		dashboardRoute: navigation.RouteDashboard,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate resolves a navigation attempt to path, performing the redirect
// and notice side effects implied by the decision. Re-evaluating the same
// unresolved denial (a re-render) does not repeat the side effects.
func (g *Guard) Evaluate(path string) Decision {
	requirement := g.routes[path]

	// The startup profile check is still in flight. Deciding now would
	// flash the wrong screen, so render a loading indicator and wait.
	if g.session.Loading() == session.LoadingChecking {
		g.resetOutcome()
		return DecisionChecking
	}

	if requirement.Public {
		return g.evaluatePublicOnly(path)
	}

	if !g.session.IsAuthenticated() {
		g.once(path, DecisionDeniedUnauth, func() {
			g.nav.Navigate(g.loginRoute, path)
		})
		return DecisionDeniedUnauth
	}

	identity, _ := g.session.Identity()
	if !requirement.allows(identity.Role) {
		g.once(path, DecisionDeniedRole, func() {
			if g.notifier != nil {
				g.notifier.Error(deniedMessage(requirement.Roles))
			}
			g.nav.Navigate(g.dashboardRoute, "")
		})
		return DecisionDeniedRole
	}

	g.resetOutcome()
	return DecisionAllowed
}

// evaluatePublicOnly inverts the authenticated check for login/register:
// a signed-in user is sent to the dashboard instead of the form.
func (g *Guard) evaluatePublicOnly(path string) Decision {
	if g.session.IsAuthenticated() {
		g.once(path, DecisionDeniedPublicOnly, func() {
			g.nav.Navigate(g.dashboardRoute, "")
		})
		return DecisionDeniedPublicOnly
	}
	g.resetOutcome()
	return DecisionAllowed
}

// once runs the denial side effect unless the identical denial already
// fired, so re-renders of a pending redirect stay silent.
func (g *Guard) once(path string, decision Decision, effect func()) {
	key := path + "|" + string(decision)

	g.mu.Lock()
	if g.lastOutcome == key {
		g.mu.Unlock()
		return
	}
	g.lastOutcome = key
	g.mu.Unlock()

	effect()
}

func (g *Guard) resetOutcome() {
	g.mu.Lock()
	g.lastOutcome = ""
	g.mu.Unlock()
}

// deniedMessage names the missing privilege, matching the wording users saw
// in the original dashboard.
func deniedMessage(roles []session.Role) string {
	if len(roles) == 0 {
		return "Access denied."
	}
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = capitalize(string(role))
	}
	return fmt.Sprintf("Access denied. %s privileges required.", strings.Join(names, " or "))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
