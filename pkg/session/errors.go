package session

import "errors"

var (
	// ErrSnapshotDecode indicates the persisted snapshot file is corrupt.
	ErrSnapshotDecode = errors.New("session.snapshot_decode_failed")

	// ErrSnapshotWrite indicates the snapshot could not be persisted.
	ErrSnapshotWrite = errors.New("session.snapshot_write_failed")
)

// Fallback messages surfaced when the server provides no usable reason.
const (
	msgLoginFailed        = "Login failed"
	msgRegistrationFailed = "Registration failed"
	msgInvalidCredentials = "Email or password is incorrect"
)
