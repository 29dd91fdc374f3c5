package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingBackend records every call to the sign-in endpoint
type countingBackend struct {
	server *httptest.Server
	calls  atomic.Int32
	last   atomic.Value
}

func newCountingBackend(t *testing.T, status int, response any) *countingBackend {
	t.Helper()
	b := &countingBackend{}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/signin", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		b.last.Store(body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if response != nil {
			_ = json.NewEncoder(w).Encode(response)
		}
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *countingBackend) client() *BackendClient {
	return NewBackendClient(b.server.URL, b.server.Client(), zerolog.Nop())
}

func (b *countingBackend) lastBody() map[string]any {
	v, _ := b.last.Load().(map[string]any)
	return v
}

func TestRedirect(t *testing.T) {
	base := "https://courses.example"

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"courses page is kept", base + "/courses", base + "/courses"},
		{"profile for the base url", base, base + "/user/profile"},
		{"profile for any other page", base + "/our-team", base + "/user/profile"},
		{"profile for a foreign host", "https://evil.example/courses", base + "/user/profile"},
		{"no prefix matching", base + "/courses/123", base + "/user/profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Redirect(tt.url, base))
		})
	}
}

func TestNextToken(t *testing.T) {
	user := &User{ID: "42", Email: "ada@example.com", Name: "Ada"}

	t.Run("sign-in stamps the token", func(t *testing.T) {
		tok := NextToken(Token{}, SignInEvent{
			Account: &Account{Provider: ProviderGoogle, AccessToken: "at-1"},
			User:    user,
		})
		assert.Equal(t, Token{AccessToken: "at-1", ID: "42", Email: "ada@example.com", Name: "Ada"}, tok)
	})

	t.Run("credentials sign-in has no access token", func(t *testing.T) {
		tok := NextToken(Token{}, SignInEvent{Account: &Account{Provider: ProviderCredentials}, User: user})
		assert.Empty(t, tok.AccessToken)
		assert.Equal(t, "42", tok.ID)
	})

	t.Run("refresh keeps the token unchanged", func(t *testing.T) {
		current := Token{AccessToken: "at-1", ID: "42", Email: "ada@example.com", Name: "Ada"}
		assert.Equal(t, current, NextToken(current, RefreshEvent{}))
		assert.Equal(t, current, NextToken(current, SignInEvent{}))
	})
}

func TestProjectSession(t *testing.T) {
	s := ProjectSession(Token{AccessToken: "at", ID: "1", Email: "a@b.co", Name: "A"})
	assert.Equal(t, Session{AccessToken: "at", User: SessionUser{ID: "1", Email: "a@b.co", Name: "A"}}, s)

	raw, err := json.Marshal(ProjectSession(Token{ID: "1", Email: "a@b.co", Name: "A"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":{"id":"1","email":"a@b.co","name":"A"}}`, string(raw))
}

func TestAuthorized(t *testing.T) {
	protected := []string{"/middleware-example", "/api/v1/courses/"}
	session := &Session{User: SessionUser{ID: "1"}}

	assert.False(t, Authorized("/middleware-example", nil, protected))
	assert.True(t, Authorized("/middleware-example", session, protected))
	assert.False(t, Authorized("/api/v1/courses/abc", nil, protected))
	assert.True(t, Authorized("/api/v1/courses", nil, protected))
	assert.True(t, Authorized("/", nil, protected))
	assert.True(t, Authorized("/middleware-example/child", nil, protected))
}

func TestSignInGate_UnverifiedEmailMakesNoCall(t *testing.T) {
	backend := newCountingBackend(t, http.StatusOK, nil)
	gate := NewSignInGate(backend.client(), zerolog.Nop())

	ok := gate.Allow(context.Background(), SignInAttempt{
		User:    &User{Email: "ada@example.com"},
		Account: &Account{Provider: ProviderGoogle},
		Profile: &Profile{Email: "ada@example.com", EmailVerified: false},
	})

	assert.False(t, ok)
	assert.Equal(t, int32(0), backend.calls.Load())
}

func TestSignInGate_VerifiedGoogle(t *testing.T) {
	backend := newCountingBackend(t, http.StatusOK, map[string]string{"id": "1"})
	gate := NewSignInGate(backend.client(), zerolog.Nop())

	ok := gate.Allow(context.Background(), SignInAttempt{
		User:    &User{Email: "ada@example.com", Name: "Ada", Image: "https://img.example/a.png"},
		Account: &Account{Provider: ProviderGoogle, Type: "oidc", ProviderAccountID: "sub-1", AccessToken: "at"},
		Profile: &Profile{Email: "ada@example.com", EmailVerified: true},
	})

	require.True(t, ok)
	assert.Equal(t, int32(1), backend.calls.Load())

	body := backend.lastBody()
	assert.Equal(t, "ada@example.com", body["email"])
	assert.Equal(t, "Ada", body["name"])
	assert.Equal(t, "https://img.example/a.png", body["image"])
	assert.Contains(t, body, "password")
	assert.Nil(t, body["password"])
	account, ok := body["account"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "google", account["provider"])
	assert.Equal(t, "sub-1", account["providerAccountId"])
	assert.Equal(t, "at", account["access_token"])
}

func TestSignInGate_BackendRejectsGoogle(t *testing.T) {
	backend := newCountingBackend(t, http.StatusForbidden, nil)
	gate := NewSignInGate(backend.client(), zerolog.Nop())

	ok := gate.Allow(context.Background(), SignInAttempt{
		User:    &User{Email: "ada@example.com"},
		Account: &Account{Provider: ProviderGoogle},
		Profile: &Profile{EmailVerified: true},
	})
	assert.False(t, ok)
	assert.Equal(t, int32(1), backend.calls.Load())
}

func TestSignInGate_NetworkFailureRejectsGoogle(t *testing.T) {
	backend := newCountingBackend(t, http.StatusOK, nil)
	client := backend.client()
	backend.server.Close()

	gate := NewSignInGate(client, zerolog.Nop())
	ok := gate.Allow(context.Background(), SignInAttempt{
		User:    &User{Email: "ada@example.com"},
		Account: &Account{Provider: ProviderGoogle},
		Profile: &Profile{EmailVerified: true},
	})
	assert.False(t, ok)
}

func TestSignInGate_CredentialsAndUnknown(t *testing.T) {
	backend := newCountingBackend(t, http.StatusOK, nil)
	gate := NewSignInGate(backend.client(), zerolog.Nop())

	assert.True(t, gate.Allow(context.Background(), SignInAttempt{
		Account:     &Account{Provider: ProviderCredentials},
		Credentials: &Credentials{Email: "ada@example.com", Password: "password123"},
	}))
	assert.False(t, gate.Allow(context.Background(), SignInAttempt{
		Account: &Account{Provider: "github"},
	}))
	assert.False(t, gate.Allow(context.Background(), SignInAttempt{}))
	assert.Equal(t, int32(0), backend.calls.Load())
}
