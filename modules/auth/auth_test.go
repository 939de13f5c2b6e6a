package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adnan7389/Compliance-Tracker-client/modules/auth"
	"github.com/Adnan7389/Compliance-Tracker-client/pkg/apiclient"
	"github.com/Adnan7389/Compliance-Tracker-client/pkg/session"
)

func newClient(t *testing.T, handler http.Handler) *auth.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := apiclient.New(srv.URL)
	require.NoError(t, err)
	return auth.NewClient(api)
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var creds session.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "owner@example.com", creds.Email)
		assert.Equal(t, "Secret123", creds.Password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"u1","name":"Maya","role":"owner","businessId":"b1","businessName":"Maya Foods","email":"owner@example.com"}}`))
	}))

	profile, err := client.Login(context.Background(), session.Credentials{
		Email:    "owner@example.com",
		Password: "Secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, session.RoleOwner, profile.Role)
	assert.Equal(t, "Maya Foods", profile.BusinessName)
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))

	_, err := client.Login(context.Background(), session.Credentials{Email: "x@example.com", Password: "nope"})
	require.Error(t, err)

	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apiclient.KindAuth, apiErr.Kind)
	assert.Equal(t, "Invalid credentials", apiErr.ServerMessage)
}

func TestClient_Register(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)

		var reg session.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reg))
		assert.Equal(t, "Maya Foods", reg.BusinessName)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"user":{"id":"u1","name":"Maya","role":"owner","businessId":"b1","businessName":"Maya Foods","email":"owner@example.com"}}`))
	}))

	profile, err := client.Register(context.Background(), session.Registration{
		Name:         "Maya",
		Email:        "owner@example.com",
		Password:     "Secret123",
		BusinessName: "Maya Foods",
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", profile.BusinessID)
}

func TestClient_CurrentProfile(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/profile", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"u2","name":"Rafi","role":"staff","businessId":"b1","businessName":"Maya Foods","email":"rafi@example.com"}}`))
	}))

	profile, err := client.CurrentProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.RoleStaff, profile.Role)
	assert.Equal(t, "rafi@example.com", profile.Email)
}

func TestClient_Logout(t *testing.T) {
	t.Parallel()

	var path string
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.Logout(context.Background()))
	assert.Equal(t, "/auth/logout", path)
}

func TestClient_LogoutAll(t *testing.T) {
	t.Parallel()

	var path string
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.LogoutAll(context.Background()))
	assert.Equal(t, "/auth/logout-all", path)
}
