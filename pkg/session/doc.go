// Package session is the single source of truth for "who is logged in".
//
// A Store owns the authenticated identity, a loading flag covering the
// startup profile check, and the last auth error message. Consumers read
// derived flags (IsAuthenticated, IsOwner, IsStaff) which are recomputed on
// every call so they can never go stale after the identity changes.
//
// Identity is only ever replaced as a whole value under the store's lock, so
// no reader can observe a partially updated identity.
//
// # Lifecycle
//
//	store := session.New(authClient, session.WithSnapshotStore(snapshots))
//	store.Bootstrap(ctx) // once per application load; never returns an error
//
//	identity, err := store.Login(ctx, session.Credentials{Email: email, Password: password})
//
// Bootstrap attempts a profile fetch; any failure — expired cookie, no
// cookie, network outage — resolves to "not authenticated" without
// propagating. Logout and LogoutAll clear local state unconditionally even
// when the server call fails, so the client can never get stuck logged in.
//
// # Persisted Snapshot
//
// A non-sensitive projection of the identity is written to a SnapshotStore
// whenever the identity changes and removed when it is cleared. The snapshot
// exists only to bootstrap optimistic UI before the network confirms the
// session; it is never an authorization source.
package session
