// Package apiclient performs all calls to the Compliance Tracker API and
// normalizes every failure into a classified error with a fixed vocabulary
// of kinds (network, validation, auth, permission, not_found, conflict,
// rate_limit, server, unknown).
//
// Credentials travel as an HTTP-only session cookie managed by the client's
// cookie jar; the package never reads or writes the credential itself, it
// only ensures the cookie is transmitted with every call.
//
// # Usage
//
//	client, err := apiclient.New("https://api.example.com/api",
//	    apiclient.WithTimeout(10*time.Second),
//	    apiclient.WithLogger(log),
//	)
//
//	resp, err := client.Do(ctx, apiclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/tasks",
//	})
//	if err != nil {
//	    var apiErr *apiclient.Error
//	    if errors.As(err, &apiErr) && apiErr.Kind == apiclient.KindValidation {
//	        // render apiErr.Fields
//	    }
//	}
//
// # Retry Behavior
//
// Only idempotent requests (GET, HEAD, OPTIONS) are retried, and only for
// statuses 408, 429, 500, 502, 503 and 504. Retries are bounded (2 by
// default) with linear backoff: the delay before retry n is baseDelay * n.
// Non-idempotent methods are never retried to avoid duplicating server-side
// effects. The sleep function is injectable so tests can assert retry counts
// without real timers.
//
// # Auth Errors
//
// A 401 response classifies as KindAuth and additionally fires the configured
// auth hook, which the application wires to clear the persisted identity
// snapshot and redirect to the login screen. The hook may be called once per
// failed request; redirect idempotence is the hook's responsibility (see the
// navigation package).
package apiclient
