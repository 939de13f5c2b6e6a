// Package tasks is the endpoint client for compliance task CRUD.
package tasks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Adnan7389/Compliance-Tracker-client/pkg/apiclient"
)

const basePath = "/tasks"

// Recurrence is the task repeat schedule.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Status is the task completion state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
)

// Task is a compliance task as returned by the server.
type Task struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Status          Status     `json:"status"`
	DueDate         string     `json:"due_date"`
	Recurrence      Recurrence `json:"recurrence"`
	AssignedTo      string     `json:"assigned_to"`
	AssignedToName  string     `json:"assigned_to_name,omitempty"`
	AssignedToEmail string     `json:"assigned_to_email,omitempty"`
}

// CreateInput are the fields accepted when creating a task.
type CreateInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	DueDate     string     `json:"due_date"`
	Recurrence  Recurrence `json:"recurrence,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
}

// UpdateInput are the fields accepted when updating a task. Nil fields are
// omitted so the server leaves them unchanged.
type UpdateInput struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Status      *Status     `json:"status,omitempty"`
	DueDate     *string     `json:"due_date,omitempty"`
	Recurrence  *Recurrence `json:"recurrence,omitempty"`
	AssignedTo  *string     `json:"assigned_to,omitempty"`
}

// ListFilter narrows the task listing. Zero-value fields are not sent.
type ListFilter struct {
	Status     Status
	Category   string
	AssignedTo string
}

func (f ListFilter) query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.AssignedTo != "" {
		q.Set("assigned_to", f.AssignedTo)
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

// Client calls the task endpoints through the shared transport.
type Client struct {
	api *apiclient.Client
}

// NewClient creates a task endpoint client.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// Create submits a new task.
func (c *Client) Create(ctx context.Context, input CreateInput) (Task, error) {
	return c.task(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   basePath,
		Body:   input,
	})
}

// List fetches the tasks visible to the current identity, optionally
// narrowed by filter.
func (c *Client) List(ctx context.Context, filter ListFilter) ([]Task, error) {
	resp, err := c.api.Do(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   basePath,
		Query:  filter.query(),
	})
	if err != nil {
		return nil, err
	}

	var tasks []Task
	if err := resp.Decode(&tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Get fetches a single task by id.
func (c *Client) Get(ctx context.Context, id string) (Task, error) {
	return c.task(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("%s/%s", basePath, id),
	})
}

// Update applies a partial update to a task.
func (c *Client) Update(ctx context.Context, id string, input UpdateInput) (Task, error) {
	return c.task(ctx, apiclient.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("%s/%s", basePath, id),
		Body:   input,
	})
}

// Delete removes a task.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.api.Do(ctx, apiclient.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("%s/%s", basePath, id),
	})
	return err
}

func (c *Client) task(ctx context.Context, req apiclient.Request) (Task, error) {
	resp, err := c.api.Do(ctx, req)
	if err != nil {
		return Task{}, err
	}

	var task Task
	if err := resp.Decode(&task); err != nil {
		return Task{}, err
	}
	return task, nil
}
