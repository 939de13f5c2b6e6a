// Package staff is the endpoint client for staff account management.
// The endpoints are owner-only on the server; calls made by a staff
// identity surface a permission error.
package staff

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Adnan7389/Compliance-Tracker-client/pkg/apiclient"
)

const basePath = "/staff"

// Member is a staff account within the business.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CreateInput are the fields accepted when creating a staff account.
type CreateInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Client calls the staff endpoints through the shared transport.
type Client struct {
	api *apiclient.Client
}

// NewClient creates a staff endpoint client.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// Create registers a new staff account in the owner's business.
func (c *Client) Create(ctx context.Context, input CreateInput) (Member, error) {
	resp, err := c.api.Do(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   basePath,
		Body:   input,
	})
	if err != nil {
		return Member{}, err
	}

	var member Member
	if err := resp.Decode(&member); err != nil {
		return Member{}, err
	}
	return member, nil
}

// List fetches every staff member of the business.
func (c *Client) List(ctx context.Context) ([]Member, error) {
	resp, err := c.api.Do(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   basePath,
	})
	if err != nil {
		return nil, err
	}

	var members []Member
	if err := resp.Decode(&members); err != nil {
		return nil, err
	}
	return members, nil
}

// Get fetches a single staff member by id.
func (c *Client) Get(ctx context.Context, id string) (Member, error) {
	resp, err := c.api.Do(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("%s/%s", basePath, id),
	})
	if err != nil {
		return Member{}, err
	}

	var member Member
	if err := resp.Decode(&member); err != nil {
		return Member{}, err
	}
	return member, nil
}
