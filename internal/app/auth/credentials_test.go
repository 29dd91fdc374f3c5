package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsProvider_InvalidShapeReturnsNil(t *testing.T) {
	backend := newCountingBackend(t, http.StatusOK, map[string]string{"id": "1"})
	p := NewCredentialsProvider(backend.client(), zerolog.Nop())

	cases := map[string]Credentials{
		"invalid email":    {Email: "not-an-email", Password: "password123"},
		"missing email":    {Password: "password123"},
		"short password":   {Email: "ada@example.com", Password: "short"},
		"long password":    {Email: "ada@example.com", Password: "abcdefghijklmnopqrstuvwxyz0123456"},
		"missing password": {Email: "ada@example.com"},
	}
	for name, creds := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, p.Authorize(context.Background(), creds))
		})
	}
	assert.Equal(t, int32(0), backend.calls.Load(), "invalid input never reaches the backend")
}

func TestCredentialsProvider_Success(t *testing.T) {
	backend := newCountingBackend(t, http.StatusOK, map[string]any{
		"id":    7,
		"email": "ada@example.com",
		"name":  "Ada",
	})
	p := NewCredentialsProvider(backend.client(), zerolog.Nop())

	user := p.Authorize(context.Background(), Credentials{Name: "Ada", Email: "ada@example.com", Password: "password123"})
	require.NotNil(t, user)
	assert.Equal(t, ID("7"), user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada", user.Name)

	assert.Equal(t, int32(1), backend.calls.Load())
	assert.Equal(t, map[string]any{
		"email":    "ada@example.com",
		"password": "password123",
		"name":     "Ada",
	}, backend.lastBody())
}

func TestCredentialsProvider_RejectionMatchesNetworkFailure(t *testing.T) {
	creds := Credentials{Email: "ada@example.com", Password: "password123"}

	rejecting := newCountingBackend(t, http.StatusUnauthorized, map[string]string{"message": "wrong password"})
	rejected := NewCredentialsProvider(rejecting.client(), zerolog.Nop()).Authorize(context.Background(), creds)

	down := newCountingBackend(t, http.StatusOK, nil)
	client := down.client()
	down.server.Close()
	unreachable := NewCredentialsProvider(client, zerolog.Nop()).Authorize(context.Background(), creds)

	assert.Nil(t, rejected)
	assert.Nil(t, unreachable)
	assert.Equal(t, rejected, unreachable)
	assert.Equal(t, int32(1), rejecting.calls.Load())
}

func TestCredentialsProvider_NullUserReturnsNil(t *testing.T) {
	backend := newCountingBackend(t, http.StatusOK, json.RawMessage("null"))
	creds := Credentials{Email: "ada@example.com", Password: "password123"}

	user, err := backend.client().SignIn(context.Background(), creds)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrEmptyUser)
	assert.ErrorIs(t, err, ErrBackendRejected)

	p := NewCredentialsProvider(backend.client(), zerolog.Nop())
	assert.Nil(t, p.Authorize(context.Background(), creds))
	assert.Equal(t, int32(2), backend.calls.Load())
}

func TestID_UnmarshalJSON(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":"abc"}`), &u))
	assert.Equal(t, ID("abc"), u.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":12345678901}`), &u))
	assert.Equal(t, ID("12345678901"), u.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &u))
	assert.Equal(t, ID(""), u.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id":{}}`), &u))
}
