// Package auth calls the authentication endpoints and provides the
// production implementation of session.AuthClient.
package auth

import (
	"context"
	"net/http"

	"github.com/Adnan7389/Compliance-Tracker-client/pkg/apiclient"
	"github.com/Adnan7389/Compliance-Tracker-client/pkg/session"
)

const (
	pathLogin     = "/auth/login"
	pathRegister  = "/auth/register"
	pathProfile   = "/auth/profile"
	pathLogout    = "/auth/logout"
	pathLogoutAll = "/auth/logout-all"
)

// Client calls the auth endpoints through the shared transport. The session
// cookie set by a successful login lives in the transport's cookie jar and
// is transmitted automatically on subsequent calls.
type Client struct {
	api *apiclient.Client
}

var _ session.AuthClient = (*Client)(nil)

// NewClient creates an auth endpoint client.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// userEnvelope is the response body wrapping account payloads.
type userEnvelope struct {
	User session.Profile `json:"user"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, creds session.Credentials) (session.Profile, error) {
	return c.user(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   pathLogin,
		Body:   creds,
	})
}

// Register creates an owner account with its business.
func (c *Client) Register(ctx context.Context, reg session.Registration) (session.Profile, error) {
	return c.user(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   pathRegister,
		Body:   reg,
	})
}

// CurrentProfile fetches the profile of the session cookie's owner.
func (c *Client) CurrentProfile(ctx context.Context) (session.Profile, error) {
	return c.user(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   pathProfile,
	})
}

// Logout ends the current server session.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.api.Do(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   pathLogout,
	})
	return err
}

// LogoutAll invalidates every session belonging to the identity.
func (c *Client) LogoutAll(ctx context.Context) error {
	_, err := c.api.Do(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   pathLogoutAll,
	})
	return err
}

func (c *Client) user(ctx context.Context, req apiclient.Request) (session.Profile, error) {
	resp, err := c.api.Do(ctx, req)
	if err != nil {
		return session.Profile{}, err
	}

	var envelope userEnvelope
	if err := resp.Decode(&envelope); err != nil {
		return session.Profile{}, err
	}
	return envelope.User, nil
}
