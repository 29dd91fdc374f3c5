package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// ErrBackendRejected is returned when the backend answers with a non-2xx status
var ErrBackendRejected = errors.New("backend rejected sign-in")

// ErrEmptyUser is returned when a 2xx sign-in response carries no user. It
// counts as a rejection.
var ErrEmptyUser = fmt.Errorf("%w: empty user", ErrBackendRejected)

const signInPath = "/user/signin"

// FederatedSignIn is the body posted for identity-provider sign-ins.
// Password is always sent as null.
type FederatedSignIn struct {
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Image    string   `json:"image,omitempty"`
	Password *string  `json:"password"`
	Account  *Account `json:"account"`
}

type credentialsSignIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// BackendClient talks to the backend user API
type BackendClient struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewBackendClient creates a client for baseURL. A nil client uses a plain
// http.Client with no timeout; calls are bounded by the request context only.
func NewBackendClient(baseURL string, client *http.Client, logger zerolog.Logger) *BackendClient {
	if client == nil {
		client = &http.Client{}
	}
	return &BackendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// SignIn posts email, password and name and decodes the returned user
func (b *BackendClient) SignIn(ctx context.Context, creds Credentials) (*User, error) {
	resp, err := b.post(ctx, credentialsSignIn{
		Email:    creds.Email,
		Password: creds.Password,
		Name:     creds.Name,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var user *User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
	}
	if user == nil {
		return nil, ErrEmptyUser
	}
	return user, nil
}

// SignInFederated registers an identity-provider sign-in with the backend
func (b *BackendClient) SignInFederated(ctx context.Context, body FederatedSignIn) error {
	resp, err := b.post(ctx, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// post sends body to the sign-in endpoint. Non-2xx responses are closed and
// reported as ErrBackendRejected.
func (b *BackendClient) post(ctx context.Context, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sign-in request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+signInPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign-in request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		b.logger.Debug().Int("status", resp.StatusCode).Msg("Backend rejected sign-in")
		return nil, fmt.Errorf("%w: status %d", ErrBackendRejected, resp.StatusCode)
	}
	return resp, nil
}
