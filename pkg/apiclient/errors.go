package apiclient

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call. The set is fixed; UI code switches on
// it instead of inspecting raw status codes.
type Kind string

const (
	KindNetwork    Kind = "network"
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindPermission Kind = "permission"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindRateLimit  Kind = "rate_limit"
	KindServer     Kind = "server"
	KindUnknown    Kind = "unknown"
)

// Configuration errors returned by New.
var (
	ErrInvalidBaseURL = errors.New("apiclient.invalid_base_url")
	ErrInvalidRequest = errors.New("apiclient.invalid_request")
)

// FieldError carries a per-field validation message from the server.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the classified failure produced for every unsuccessful call.
// It is the only error type surfaced by Client.Do besides the configuration
// sentinels above.
type Error struct {
	Kind       Kind
	StatusCode int // zero when no response was received
	Message    string
	// ServerMessage is the literal message from the server's error body,
	// empty when the server sent none. Message falls back to a documented
	// default in that case.
	ServerMessage string
	Fields        []FieldError   // populated for validation errors (400/422)
	Detail        map[string]any // conflict detail payload (409), if any
	cause         error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is a classified error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// IsNetwork reports whether err is a network-level failure (no response
// reached the client, including timeouts).
func IsNetwork(err error) bool { return IsKind(err, KindNetwork) }

// IsValidation reports whether err carries field validation failures.
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// IsAuth reports whether err indicates an expired or missing session.
func IsAuth(err error) bool { return IsKind(err, KindAuth) }

// IsPermission reports whether err indicates insufficient privileges.
func IsPermission(err error) bool { return IsKind(err, KindPermission) }

// IsNotFound reports whether err indicates a missing resource.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsConflict reports whether err indicates a resource conflict.
func IsConflict(err error) bool { return IsKind(err, KindConflict) }
