package apiclient

import (
	"encoding/json"
	"net/http"
)

// Fallback messages used when the server response carries no message of its
// own. The 500 message is always used verbatim so internal error details
// never leak to the UI.
const (
	msgValidation = "Validation failed"
	msgAuth       = "Session expired"
	msgPermission = "Access denied"
	msgNotFound   = "Resource not found"
	msgConflict   = "Resource already exists"
	msgRateLimit  = "Too many requests. Please try again later."
	msgServer     = "Server error. Please try again later."
	msgNetwork    = "Network error. Please check your connection."
	msgUnknown    = "An unexpected error occurred"
)

// errorEnvelope is the API's error response body.
type errorEnvelope struct {
	Message string         `json:"message"`
	Errors  []FieldError   `json:"errors,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// classifyTransport maps a failure that produced no HTTP response. Timeouts
// and cancellations fold into the network kind like any other connectivity
// failure.
func classifyTransport(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: msgNetwork,
		cause:   err,
	}
}

// classifyStatus maps a non-2xx response to a classified error. The body is
// decoded as the API's error envelope; a missing or malformed body falls
// back to the documented message for each kind.
func classifyStatus(statusCode int, body []byte) *Error {
	var envelope errorEnvelope
	if len(body) > 0 {
		// Undecodable bodies are fine, fallback messages cover them.
		_ = json.Unmarshal(body, &envelope)
	}

	apiErr := &Error{
		StatusCode:    statusCode,
		Message:       envelope.Message,
		ServerMessage: envelope.Message,
	}

	switch statusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		apiErr.Kind = KindValidation
		apiErr.Fields = envelope.Errors
		fallback(apiErr, msgValidation)
	case http.StatusUnauthorized:
		apiErr.Kind = KindAuth
		fallback(apiErr, msgAuth)
	case http.StatusForbidden:
		apiErr.Kind = KindPermission
		fallback(apiErr, msgPermission)
	case http.StatusNotFound:
		apiErr.Kind = KindNotFound
		fallback(apiErr, msgNotFound)
	case http.StatusConflict:
		apiErr.Kind = KindConflict
		apiErr.Detail = envelope.Details
		fallback(apiErr, msgConflict)
	case http.StatusTooManyRequests:
		apiErr.Kind = KindRateLimit
		fallback(apiErr, msgRateLimit)
	case http.StatusInternalServerError:
		apiErr.Kind = KindServer
		apiErr.Message = msgServer
	default:
		apiErr.Kind = KindUnknown
		fallback(apiErr, msgUnknown)
	}

	return apiErr
}

func fallback(apiErr *Error, message string) {
	if apiErr.Message == "" {
		apiErr.Message = message
	}
}
