package auth

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// SignInGate decides whether a completed strategy may sign in
type SignInGate struct {
	backend *BackendClient
	logger  zerolog.Logger
}

// NewSignInGate creates a SignInGate
func NewSignInGate(backend *BackendClient, logger zerolog.Logger) *SignInGate {
	return &SignInGate{backend: backend, logger: logger}
}

// Allow is the signIn callback. Identity-provider attempts need a verified
// email and the backend's acceptance; credential attempts already went
// through the backend and pass; anything else is refused.
func (g *SignInGate) Allow(ctx context.Context, attempt SignInAttempt) bool {
	if attempt.Account != nil && attempt.Account.Provider == ProviderGoogle {
		if attempt.Profile == nil || !attempt.Profile.EmailVerified {
			g.logger.Debug().Msg("Provider email not verified")
			return false
		}

		body := FederatedSignIn{Account: attempt.Account}
		if attempt.User != nil {
			body.Email = attempt.User.Email
			body.Name = attempt.User.Name
			body.Image = attempt.User.Image
		}
		if err := g.backend.SignInFederated(ctx, body); err != nil {
			g.logger.Error().Err(err).Str("provider", attempt.Account.Provider).Msg("Federated sign-in failed")
			return false
		}
		return true
	}

	return attempt.Credentials != nil
}

// Redirect is the redirect callback: the course catalogue when asked for
// explicitly, the profile page otherwise.
func Redirect(url, baseURL string) string {
	if url == baseURL+"/courses" {
		return baseURL + "/courses"
	}
	return baseURL + "/user/profile"
}

// NextToken is the jwt callback. A sign-in stamps the account's access
// token and the user's identity; later reads keep the token as is.
func NextToken(current Token, event Event) Token {
	e, ok := event.(SignInEvent)
	if !ok || e.Account == nil {
		return current
	}

	next := current
	next.AccessToken = e.Account.AccessToken
	if e.User != nil {
		next.ID = string(e.User.ID)
		next.Email = e.User.Email
		next.Name = e.User.Name
	}
	return next
}

// ProjectSession is the session callback
func ProjectSession(token Token) Session {
	return Session{
		AccessToken: token.AccessToken,
		User: SessionUser{
			ID:    token.ID,
			Email: token.Email,
			Name:  token.Name,
		},
	}
}

// Authorized is the authorized callback: a protected path needs a session,
// every other path is open.
func Authorized(path string, session *Session, protected []string) bool {
	for _, p := range protected {
		if path == p || (strings.HasSuffix(p, "/") && strings.HasPrefix(path, p)) {
			return session != nil
		}
	}
	return true
}
