package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

const testBaseURL = "https://courses.example"

func newTestAuthService(t *testing.T, handler http.HandlerFunc) *AuthService {
	t.Helper()
	backendServer := httptest.NewServer(handler)
	t.Cleanup(backendServer.Close)

	backend := appauth.NewBackendClient(backendServer.URL, backendServer.Client(), zerolog.Nop())
	configurator := appauth.NewConfigurator(appauth.AuthConfig{BaseURL: testBaseURL}, backend, nil, zerolog.Nop())
	codec := auth.NewSessionCodec(auth.SessionConfig{
		Secret: "test-secret",
		MaxAge: time.Hour,
		Issuer: "coursehub-test",
	})
	return NewAuthService(configurator, codec, nil, nil, zerolog.Nop())
}

func acceptingBackend(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    17,
			"email": body["email"],
			"name":  "Ada Lovelace",
		})
	}
}

func TestAuthService_CredentialsRoundTrip(t *testing.T) {
	svc := newTestAuthService(t, acceptingBackend(t))

	result, err := svc.SignInWithCredentials(t.Context(), dto.CredentialsSignInRequest{
		Email:       "ada@example.com",
		Password:    "password123",
		CallbackURL: testBaseURL + "/courses",
	})
	require.NoError(t, err)

	assert.Equal(t, appauth.StateAuthenticated, result.State)
	assert.Equal(t, testBaseURL+"/courses", result.RedirectURL)
	assert.NotEmpty(t, result.SessionToken)

	session, err := svc.Session(result.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, "17", session.User.ID)
	assert.Equal(t, "ada@example.com", session.User.Email)
	assert.Equal(t, "Ada Lovelace", session.User.Name)
	assert.Empty(t, session.AccessToken)
}

func TestAuthService_CredentialsRedirectDefaultsToProfile(t *testing.T) {
	svc := newTestAuthService(t, acceptingBackend(t))

	result, err := svc.SignInWithCredentials(t.Context(), dto.CredentialsSignInRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"/user/profile", result.RedirectURL)
}

func TestAuthService_CredentialsFailure(t *testing.T) {
	var calls atomic.Int32
	svc := newTestAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	tests := []struct {
		name      string
		req       dto.CredentialsSignInRequest
		wantCalls int32
	}{
		{"invalid email", dto.CredentialsSignInRequest{Email: "not-an-email", Password: "password123"}, 0},
		{"short password", dto.CredentialsSignInRequest{Email: "ada@example.com", Password: "short"}, 0},
		{"backend rejects", dto.CredentialsSignInRequest{Email: "ada@example.com", Password: "password123"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls.Store(0)
			result, err := svc.SignInWithCredentials(t.Context(), tt.req)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestAuthService_CredentialsNullUserIssuesNoSession(t *testing.T) {
	svc := newTestAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("null"))
	})

	result, err := svc.SignInWithCredentials(t.Context(), dto.CredentialsSignInRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Session(t *testing.T) {
	svc := newTestAuthService(t, acceptingBackend(t))

	_, err := svc.Session("")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	_, err = svc.Session("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	other := auth.NewSessionCodec(auth.SessionConfig{Secret: "other-secret", MaxAge: time.Hour})
	forged, err := other.Encode(auth.SessionClaims{UserID: "1"})
	require.NoError(t, err)
	_, err = svc.Session(forged)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestAuthService_GoogleNotConfigured(t *testing.T) {
	svc := newTestAuthService(t, acceptingBackend(t))

	_, _, err := svc.BeginGoogle()
	assert.ErrorIs(t, err, apperrors.ErrProviderNotFound)

	_, err = svc.CompleteGoogle(t.Context(), "code", "state", "state", "")
	assert.ErrorIs(t, err, apperrors.ErrProviderNotFound)

	assert.Empty(t, svc.Providers())
}

func TestAuthService_Authorized(t *testing.T) {
	svc := newTestAuthService(t, acceptingBackend(t))

	assert.False(t, svc.Authorized("/middleware-example", nil))
	assert.True(t, svc.Authorized("/middleware-example", &appauth.Session{}))
	assert.True(t, svc.Authorized("/courses", nil))
	assert.Equal(t, testBaseURL+"/signin?error=AccessDenied", svc.SignInErrorURL())
}
