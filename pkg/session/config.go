package session

// Config holds session store configuration.
type Config struct {
	// SnapshotPath is the file the identity snapshot is persisted to.
	// Empty keeps the snapshot in memory only.
	SnapshotPath string `env:"SESSION_SNAPSHOT_PATH" envDefault:""`
}

// NewFromConfig creates a Store from the provided Config, choosing the
// snapshot backend from SnapshotPath. Explicit options take precedence.
func NewFromConfig(cfg Config, client AuthClient, opts ...Option) *Store {
	configOpts := make([]Option, 0, len(opts)+1)
	if cfg.SnapshotPath != "" {
		configOpts = append(configOpts, WithSnapshotStore(NewFileSnapshotStore(cfg.SnapshotPath)))
	}
	configOpts = append(configOpts, opts...)

	return New(client, configOpts...)
}
