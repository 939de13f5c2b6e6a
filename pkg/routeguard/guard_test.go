package routeguard_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adnan7389/Compliance-Tracker-client/pkg/navigation"
	"github.com/Adnan7389/Compliance-Tracker-client/pkg/routeguard"
	"github.com/Adnan7389/Compliance-Tracker-client/pkg/session"
)

// fakeSession is a settable SessionState.
type fakeSession struct {
	loading  session.LoadingState
	identity *session.Identity
}

func (f *fakeSession) Loading() session.LoadingState {
	return f.loading
}

func (f *fakeSession) IsAuthenticated() bool {
	return f.identity != nil
}

func (f *fakeSession) Identity() (session.Identity, bool) {
	if f.identity == nil {
		return session.Identity{}, false
	}
	return *f.identity, true
}

// fakeNavigator records navigations including the carried return path.
type fakeNavigator struct {
	mu       sync.Mutex
	current  string
	target   string
	returnTo string
	count    int
}

func (n *fakeNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *fakeNavigator) Navigate(to, returnTo string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = to
	n.target = to
	n.returnTo = returnTo
	n.count++
}

// fakeNotifier collects surfaced notices.
type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Error(message string) {
	n.messages = append(n.messages, message)
}

func staffIdentity() *session.Identity {
	return &session.Identity{ID: "u-2", Name: "Jonas", Role: session.RoleStaff}
}

func ownerIdentity() *session.Identity {
	return &session.Identity{ID: "u-1", Name: "Amina", Role: session.RoleOwner}
}

func TestGuard_CheckingRendersLoader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		identity *session.Identity
	}{
		{"no identity yet", nil},
		{"identity present but unconfirmed", ownerIdentity()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := &fakeSession{loading: session.LoadingChecking, identity: tt.identity}
			nav := &fakeNavigator{current: "/tasks"}
			guard := routeguard.New(state, nav)

			decision := guard.Evaluate("/tasks")

			assert.Equal(t, routeguard.DecisionChecking, decision)
			assert.Zero(t, nav.count, "no redirect while checking")
		})
	}
}

func TestGuard_UnauthenticatedRedirectsToLoginWithReturnPath(t *testing.T) {
	t.Parallel()

	state := &fakeSession{loading: session.LoadingReady}
	nav := &fakeNavigator{current: "/tasks"}
	guard := routeguard.New(state, nav)

	decision := guard.Evaluate("/tasks")

	assert.Equal(t, routeguard.DecisionDeniedUnauth, decision)
	assert.Equal(t, navigation.RouteLogin, nav.target)
	assert.Equal(t, "/tasks", nav.returnTo, "original request carried for post-login return")
}

func TestGuard_StaffDeniedOwnerRoute(t *testing.T) {
	t.Parallel()

	state := &fakeSession{loading: session.LoadingReady, identity: staffIdentity()}
	nav := &fakeNavigator{current: "/staff"}
	notifier := &fakeNotifier{}
	guard := routeguard.New(state, nav, routeguard.WithNotifier(notifier))

	decision := guard.Evaluate("/staff")

	assert.Equal(t, routeguard.DecisionDeniedRole, decision)
	assert.Equal(t, navigation.RouteDashboard, nav.target)
	require.Len(t, notifier.messages, 1)
	assert.True(t, strings.Contains(notifier.messages[0], "Owner"), "notice names the missing privilege")
}

func TestGuard_RoleDenialNoticeFiresOncePerDenial(t *testing.T) {
	t.Parallel()

	state := &fakeSession{loading: session.LoadingReady, identity: staffIdentity()}
	nav := &fakeNavigator{current: "/staff"}
	notifier := &fakeNotifier{}
	guard := routeguard.New(state, nav, routeguard.WithNotifier(notifier))

	// A pending redirect re-renders a few times before it completes.
	guard.Evaluate("/staff")
	guard.Evaluate("/staff")
	guard.Evaluate("/staff")

	assert.Len(t, notifier.messages, 1, "one notice per denial, not per render")
	assert.Equal(t, 1, nav.count, "one redirect per denial")

	// Visiting an allowed route and being denied again is a new denial.
	guard.Evaluate("/tasks")
	guard.Evaluate("/staff")
	assert.Len(t, notifier.messages, 2)
}

func TestGuard_OwnerAllowedEverywhere(t *testing.T) {
	t.Parallel()

	state := &fakeSession{loading: session.LoadingReady, identity: ownerIdentity()}
	nav := &fakeNavigator{current: navigation.RouteDashboard}
	guard := routeguard.New(state, nav)

	for _, path := range []string{navigation.RouteDashboard, "/tasks", "/staff", "/profile"} {
		assert.Equal(t, routeguard.DecisionAllowed, guard.Evaluate(path), path)
	}
	assert.Zero(t, nav.count)
}

func TestGuard_StaffAllowedOnUnrestrictedRoutes(t *testing.T) {
	t.Parallel()

	state := &fakeSession{loading: session.LoadingReady, identity: staffIdentity()}
	nav := &fakeNavigator{}
	guard := routeguard.New(state, nav)

	assert.Equal(t, routeguard.DecisionAllowed, guard.Evaluate("/tasks"))
	assert.Equal(t, routeguard.DecisionAllowed, guard.Evaluate("/profile"))
}

func TestGuard_UnknownRouteRequiresAuthentication(t *testing.T) {
	t.Parallel()

	state := &fakeSession{loading: session.LoadingReady}
	nav := &fakeNavigator{current: "/reports"}
	guard := routeguard.New(state, nav)

	assert.Equal(t, routeguard.DecisionDeniedUnauth, guard.Evaluate("/reports"))
}

func TestGuard_PublicOnlyRedirectsAuthenticatedUser(t *testing.T) {
	t.Parallel()

	state := &fakeSession{loading: session.LoadingReady, identity: ownerIdentity()}
	nav := &fakeNavigator{current: navigation.RouteLogin}
	guard := routeguard.New(state, nav)

	decision := guard.Evaluate(navigation.RouteLogin)

	assert.Equal(t, routeguard.DecisionDeniedPublicOnly, decision)
	assert.Equal(t, navigation.RouteDashboard, nav.target)
}

func TestGuard_PublicOnlyRendersForAnonymous(t *testing.T) {
	t.Parallel()

	state := &fakeSession{loading: session.LoadingReady}
	nav := &fakeNavigator{current: navigation.RouteLogin}
	guard := routeguard.New(state, nav)

	assert.Equal(t, routeguard.DecisionAllowed, guard.Evaluate(navigation.RouteLogin))
	assert.Zero(t, nav.count)
}

func TestGuard_CheckingResolvesOnceSessionReady(t *testing.T) {
	t.Parallel()

	state := &fakeSession{loading: session.LoadingChecking}
	nav := &fakeNavigator{current: "/tasks"}
	guard := routeguard.New(state, nav)

	assert.Equal(t, routeguard.DecisionChecking, guard.Evaluate("/tasks"))

	state.loading = session.LoadingReady
	state.identity = staffIdentity()
	assert.Equal(t, routeguard.DecisionAllowed, guard.Evaluate("/tasks"))
}

func TestLoadRouteTable(t *testing.T) {
	t.Parallel()

	table, err := routeguard.LoadRouteTable(strings.NewReader(`
/staff:
  roles: [owner]
/login:
  public: true
/reports: {}
`))
	require.NoError(t, err)

	state := &fakeSession{loading: session.LoadingReady, identity: staffIdentity()}
	nav := &fakeNavigator{current: "/reports"}
	guard := routeguard.New(state, nav, routeguard.WithRouteTable(table))

	assert.Equal(t, routeguard.DecisionAllowed, guard.Evaluate("/reports"))
	assert.Equal(t, routeguard.DecisionDeniedRole, guard.Evaluate("/staff"))
}

func TestLoadRouteTable_Invalid(t *testing.T) {
	t.Parallel()

	_, err := routeguard.LoadRouteTable(strings.NewReader("{not yaml"))
	assert.ErrorIs(t, err, routeguard.ErrInvalidRouteTable)
}
