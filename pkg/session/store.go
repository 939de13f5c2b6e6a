package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/Adnan7389/Compliance-Tracker-client/pkg/apiclient"
)

// LoadingState tells whether the startup profile check has resolved.
type LoadingState string

const (
	// LoadingChecking means the startup profile fetch is still in flight.
	LoadingChecking LoadingState = "checking"
	// LoadingReady means the session state is settled either way.
	LoadingReady LoadingState = "ready"
)

// Store owns the authenticated identity. All writers replace the identity as
// a whole value under the lock; derived flags are computed on every read.
type Store struct {
	client    AuthClient
	snapshots SnapshotStore
	logger    *slog.Logger

	mu        sync.RWMutex
	identity  *Identity
	loading   LoadingState
	lastError string

	bootstrapOnce sync.Once
}

// Option configures a Store.
type Option func(*Store)

// WithSnapshotStore sets the persisted snapshot backend. Default is an
// in-memory store, which effectively disables persistence.
func WithSnapshotStore(snapshots SnapshotStore) Option {
	return func(s *Store) {
		if snapshots != nil {
			s.snapshots = snapshots
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a session store backed by the given auth client.
func New(client AuthClient, opts ...Option) *Store {
	if client == nil {
		// Fail fast on misconfiguration, nothing works without the API.
		panic("session: auth client is required")
	}

	s := &Store{
		client:  client,
		logger:  slog.Default(),
		loading: LoadingChecking,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.snapshots == nil {
		s.snapshots = NewMemorySnapshotStore()
	}

	return s
}

// Bootstrap resolves the session state at application start by fetching the
// current profile. Any failure means "not authenticated": an absent session
// cookie and a genuine outage are deliberately indistinguishable here.
// It never returns an error and runs at most once per store; subsequent
// calls are no-ops.
func (s *Store) Bootstrap(ctx context.Context) {
	s.bootstrapOnce.Do(func() {
		defer s.setLoading(LoadingReady)

		if _, err := s.RefreshProfile(ctx); err != nil {
			s.logger.DebugContext(ctx, "session bootstrap resolved unauthenticated", slog.Any("error", err))
		}
	})
}

// RefreshProfile re-fetches the current profile. On success the identity and
// snapshot are replaced; on any failure both are cleared and the error
// propagates so callers can distinguish a forced refresh failure.
func (s *Store) RefreshProfile(ctx context.Context) (Identity, error) {
	profile, err := s.client.CurrentProfile(ctx)
	if err != nil {
		s.clearIdentity()
		return Identity{}, err
	}

	identity := profile.identity()
	s.setIdentity(identity)
	return identity, nil
}

// Login authenticates with the given credentials. On success the identity
// and snapshot are replaced with the safe projection. On failure the current
// identity is left untouched and the error is propagated with the message
// normalized for display.
func (s *Store) Login(ctx context.Context, creds Credentials) (Identity, error) {
	profile, err := s.client.Login(ctx, creds)
	if err != nil {
		normalized := normalizeAuthError(err, msgLoginFailed, false)
		s.setError(errMessage(normalized))
		return Identity{}, normalized
	}

	identity := profile.identity()
	s.setIdentity(identity)
	return identity, nil
}

// Register creates an account and signs the user in. Population rules match
// Login; failure messages prefer the server's reason, then the joined
// per-field validation messages, then a generic fallback.
func (s *Store) Register(ctx context.Context, reg Registration) (Identity, error) {
	profile, err := s.client.Register(ctx, reg)
	if err != nil {
		normalized := normalizeAuthError(err, msgRegistrationFailed, true)
		s.setError(errMessage(normalized))
		return Identity{}, normalized
	}

	identity := profile.identity()
	s.setIdentity(identity)
	return identity, nil
}

// Logout ends the server session and unconditionally clears local state.
// A failing endpoint is logged and swallowed so the client can never get
// stuck logged in because the server refused the logout.
func (s *Store) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		s.logger.ErrorContext(ctx, "logout call failed", slog.Any("error", err))
	}
	s.clearIdentity()
}

// LogoutAll invalidates every session for the identity, with the same
// unconditional local clearing guarantee as Logout.
func (s *Store) LogoutAll(ctx context.Context) {
	if err := s.client.LogoutAll(ctx); err != nil {
		s.logger.ErrorContext(ctx, "logout-all call failed", slog.Any("error", err))
	}
	s.clearIdentity()
}

// Identity returns the current identity, if any.
func (s *Store) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// IsAuthenticated reports whether an identity is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// IsOwner reports whether the current identity has the owner role.
func (s *Store) IsOwner() bool {
	return s.hasRole(RoleOwner)
}

// IsStaff reports whether the current identity has the staff role.
func (s *Store) IsStaff() bool {
	return s.hasRole(RoleStaff)
}

// Loading returns the bootstrap state.
func (s *Store) Loading() LoadingState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the most recent auth failure message, empty when the
// last auth action succeeded.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// ClearError resets the last auth failure message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

// CachedIdentity loads the persisted snapshot for optimistic UI before the
// network confirms the session. Callers must not treat it as authenticated
// state; only a confirmed in-memory identity grants access.
func (s *Store) CachedIdentity() (Identity, bool) {
	identity, ok, err := s.snapshots.Load()
	if err != nil {
		s.logger.Debug("snapshot load failed", slog.Any("error", err))
		return Identity{}, false
	}
	return identity, ok
}

// ClearSnapshot removes the persisted snapshot. Wired as the transport
// layer's auth-expiry clear callback.
func (s *Store) ClearSnapshot() {
	if err := s.snapshots.Clear(); err != nil {
		s.logger.Debug("snapshot clear failed", slog.Any("error", err))
	}
}

func (s *Store) hasRole(role Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil && s.identity.Role == role
}

func (s *Store) setIdentity(identity Identity) {
	s.mu.Lock()
	s.identity = &identity
	s.lastError = ""
	s.mu.Unlock()

	if err := s.snapshots.Save(identity); err != nil {
		s.logger.Debug("snapshot save failed", slog.Any("error", err))
	}
}

func (s *Store) clearIdentity() {
	s.mu.Lock()
	s.identity = nil
	s.lastError = ""
	s.mu.Unlock()

	s.ClearSnapshot()
}

func (s *Store) setLoading(state LoadingState) {
	s.mu.Lock()
	s.loading = state
	s.mu.Unlock()
}

func (s *Store) setError(message string) {
	s.mu.Lock()
	s.lastError = message
	s.mu.Unlock()
}

// normalizeAuthError rewrites a classified failure into the message shown to
// the user. "Invalid credentials" is rewritten because the server's literal
// phrasing reads poorly on a login form; other server reasons pass through.
// joinFields enables the registration rule of joining per-field validation
// messages when the server sends no top-level reason.
func normalizeAuthError(err error, generic string, joinFields bool) error {
	var apiErr *apiclient.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	message := generic
	switch {
	case apiErr.ServerMessage == "Invalid credentials":
		message = msgInvalidCredentials
	case apiErr.ServerMessage != "":
		message = apiErr.ServerMessage
	case joinFields && len(apiErr.Fields) > 0:
		parts := make([]string, 0, len(apiErr.Fields))
		for _, f := range apiErr.Fields {
			parts = append(parts, f.Message)
		}
		message = strings.Join(parts, ", ")
	}

	normalized := *apiErr
	normalized.Message = message
	return &normalized
}

func errMessage(err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
