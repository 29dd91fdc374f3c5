package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testGoogleProvider(tokenURL string) *GoogleProvider {
	return newGoogleProvider(GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "https://courses.example/auth/callback/google",
	}, oauth2.Endpoint{
		AuthURL:  "https://accounts.example/o/oauth2/auth",
		TokenURL: tokenURL,
	}, nil)
}

func TestGoogleProvider_AuthCodeURL(t *testing.T) {
	g := testGoogleProvider("https://accounts.example/token")

	raw := g.AuthCodeURL("state-123")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "accounts.example", u.Host)
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "https://courses.example/auth/callback/google", q.Get("redirect_uri"))
	assert.Equal(t, "openid profile email", q.Get("scope"))
}

func TestGoogleProvider_ExchangeWithoutIDToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	g := testGoogleProvider(server.URL)
	_, _, err := g.Exchange(context.Background(), "code")
	assert.True(t, errors.Is(err, ErrMissingIDToken))
}

func TestGoogleProvider_ExchangeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	g := testGoogleProvider(server.URL)
	_, _, err := g.Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestMapProfile(t *testing.T) {
	u := MapProfile(Profile{
		Subject:       "sub-1",
		Email:         "ada@example.com",
		Name:          "Ada",
		Picture:       "https://img.example/a.png",
		EmailVerified: true,
	})
	assert.Equal(t, User{
		ID:            "sub-1",
		Email:         "ada@example.com",
		Name:          "Ada",
		Image:         "https://img.example/a.png",
		EmailVerified: true,
		Role:          "USER",
	}, u)

	assert.Equal(t, "INSTRUCTOR", MapProfile(Profile{Role: "INSTRUCTOR"}).Role)
	assert.Equal(t, "https://img.example/b.png", MapProfile(Profile{Image: "https://img.example/b.png"}).Image)
}

func TestConfigurator_ProviderMap(t *testing.T) {
	backend := NewBackendClient("http://backend.invalid", nil, zerolog.Nop())

	withoutGoogle := NewConfigurator(AuthConfig{BaseURL: "https://courses.example"}, backend, nil, zerolog.Nop())
	assert.Empty(t, withoutGoogle.ProviderMap())

	withGoogle := NewConfigurator(AuthConfig{BaseURL: "https://courses.example"}, backend,
		testGoogleProvider("https://accounts.example/token"), zerolog.Nop())
	assert.Equal(t, []ProviderInfo{{ID: "google", Name: "Google"}}, withGoogle.ProviderMap())

	for _, p := range withGoogle.ProviderMap() {
		assert.NotEqual(t, ProviderCredentials, p.ID)
	}
	assert.Equal(t, "https://courses.example/courses", withGoogle.Redirect("https://courses.example/courses"))
	assert.False(t, withGoogle.Authorized("/middleware-example", nil))
}

func TestConfigurator_DebugLevel(t *testing.T) {
	backend := NewBackendClient("http://backend.invalid", nil, zerolog.Nop())

	quiet := NewConfigurator(AuthConfig{}, backend, nil, zerolog.New(nil))
	assert.Equal(t, zerolog.InfoLevel, quiet.Logger().GetLevel())

	verbose := NewConfigurator(AuthConfig{Debug: true}, backend, nil, zerolog.New(nil))
	assert.Equal(t, zerolog.DebugLevel, verbose.Logger().GetLevel())
}

func TestConfigurator_LeavesBackendLoggerAlone(t *testing.T) {
	base := zerolog.New(nil).Level(zerolog.WarnLevel)
	backend := NewBackendClient("http://backend.invalid", nil, base)

	NewConfigurator(AuthConfig{Debug: true}, backend, nil, zerolog.New(nil))
	assert.Equal(t, zerolog.WarnLevel, backend.logger.GetLevel())
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, NewLogger(zerolog.New(nil), false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, NewLogger(zerolog.New(nil), true).GetLevel())
}
