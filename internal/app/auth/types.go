package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Provider ids
const (
	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
)

// ID is a user id as reported by the backend. The backend may send it as a
// JSON string or number; it is always kept as a string.
type ID string

// UnmarshalJSON accepts both string and numeric ids
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid user id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

// User is the identity a strategy yields on success
type User struct {
	ID            ID     `json:"id,omitempty"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Image         string `json:"image,omitempty"`
	EmailVerified bool   `json:"emailVerified,omitempty"`
	Role          string `json:"role,omitempty"`
}

// Credentials is the input of the password strategy
type Credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=32"`
}

// Profile is the claim set read from the identity provider's id_token
type Profile struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture,omitempty"`
	Image         string `json:"image,omitempty"`
	EmailVerified bool   `json:"email_verified"`
	Role          string `json:"role,omitempty"`
}

// Account is the provider linkage produced by a sign-in. Field names follow
// the shape the backend expects.
type Account struct {
	Provider          string `json:"provider"`
	Type              string `json:"type"`
	ProviderAccountID string `json:"providerAccountId"`
	AccessToken       string `json:"access_token,omitempty"`
	RefreshToken      string `json:"refresh_token,omitempty"`
	ExpiresAt         int64  `json:"expires_at,omitempty"`
	TokenType         string `json:"token_type,omitempty"`
	Scope             string `json:"scope,omitempty"`
	IDToken           string `json:"id_token,omitempty"`
}

// SignInAttempt carries what the signIn callback inspects
type SignInAttempt struct {
	User        *User
	Account     *Account
	Profile     *Profile
	Credentials *Credentials
}

// Token is the server-side session token
type Token struct {
	AccessToken string `json:"accessToken,omitempty"`
	ID          string `json:"id,omitempty"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
}

// Event drives the token lifecycle
type Event interface {
	isEvent()
}

// SignInEvent fires once when a sign-in succeeds
type SignInEvent struct {
	Account *Account
	User    *User
}

// RefreshEvent fires on every later session read
type RefreshEvent struct{}

func (SignInEvent) isEvent()  {}
func (RefreshEvent) isEvent() {}

// SessionUser is the user part of a session
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the client-visible session
type Session struct {
	AccessToken string      `json:"accessToken,omitempty"`
	User        SessionUser `json:"user"`
}

// ProviderInfo is an entry of the provider map
type ProviderInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
