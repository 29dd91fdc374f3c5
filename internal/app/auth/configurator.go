// Package auth wires the sign-in strategies and the session callbacks.
//
// Two strategies exist: email and password checked by the backend user API,
// and Google through OpenID Connect. Both end in the same signIn gate and
// the same token lifecycle; the resulting Token is kept client-side as a
// signed cookie.
package auth

import (
	"context"

	"github.com/rs/zerolog"
)

// DefaultProtectedPaths require a session. Entries ending in "/" match by prefix.
var DefaultProtectedPaths = []string{"/middleware-example", "/api/v1/courses/"}

// AuthConfig holds the non-secret settings of the configurator
type AuthConfig struct {
	BaseURL        string
	Debug          bool
	ProtectedPaths []string
}

// Configurator exposes the strategies and callbacks built from explicit handles
type Configurator struct {
	config      AuthConfig
	credentials *CredentialsProvider
	google      *GoogleProvider
	gate        *SignInGate
	logger      zerolog.Logger
}

// NewLogger derives the auth component logger. debug lowers it to debug
// level; otherwise it logs at info.
func NewLogger(base zerolog.Logger, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return base.With().Str("component", "auth").Logger().Level(level)
}

// NewConfigurator builds the configurator. google may be nil when the
// identity provider is not configured. Debug lowers the auth logger to
// debug level. backend keeps the logger it was built with.
func NewConfigurator(cfg AuthConfig, backend *BackendClient, google *GoogleProvider, logger zerolog.Logger) *Configurator {
	logger = NewLogger(logger, cfg.Debug)

	if cfg.ProtectedPaths == nil {
		cfg.ProtectedPaths = DefaultProtectedPaths
	}

	return &Configurator{
		config:      cfg,
		credentials: NewCredentialsProvider(backend, logger),
		google:      google,
		gate:        NewSignInGate(backend, logger),
		logger:      logger,
	}
}

// Logger returns the auth logger
func (c *Configurator) Logger() zerolog.Logger {
	return c.logger
}

// BaseURL returns the public base URL used for redirects
func (c *Configurator) BaseURL() string {
	return c.config.BaseURL
}

// Credentials returns the password strategy
func (c *Configurator) Credentials() *CredentialsProvider {
	return c.credentials
}

// Google returns the identity-provider strategy, or nil when disabled
func (c *Configurator) Google() *GoogleProvider {
	return c.google
}

// ProviderMap lists the sign-in providers shown on the sign-in page. The
// credentials strategy has its own form and is left out.
func (c *Configurator) ProviderMap() []ProviderInfo {
	providers := []ProviderInfo{}
	if c.google != nil {
		providers = append(providers, c.google.Info())
	}
	return providers
}

// AllowSignIn runs the signIn callback
func (c *Configurator) AllowSignIn(ctx context.Context, attempt SignInAttempt) bool {
	return c.gate.Allow(ctx, attempt)
}

// Redirect runs the redirect callback against the configured base URL
func (c *Configurator) Redirect(url string) string {
	return Redirect(url, c.config.BaseURL)
}

// Authorized runs the authorized callback
func (c *Configurator) Authorized(path string, session *Session) bool {
	return Authorized(path, session, c.config.ProtectedPaths)
}
