package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

// Cookie names used by the auth endpoints
const (
	SessionCookieName  = "coursehub.session-token"
	StateCookieName    = "coursehub.oauth-state"
	CallbackCookieName = "coursehub.callback-url"
)

// StateMaxAge bounds how long an OAuth round trip may take
const StateMaxAge = 10 * time.Minute

// SignInResult is a completed sign-in
type SignInResult struct {
	SessionToken string
	RedirectURL  string
	Session      appauth.Session
	State        appauth.SignInState
}

// AuthService runs sign-in attempts and issues session tokens
type AuthService struct {
	configurator *appauth.Configurator
	codec        *auth.SessionCodec
	users        *repositories.UserRepository
	accounts     *repositories.AccountRepository
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService. users and accounts may be nil,
// in which case provider accounts are not linked to local users.
func NewAuthService(
	configurator *appauth.Configurator,
	codec *auth.SessionCodec,
	users *repositories.UserRepository,
	accounts *repositories.AccountRepository,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		configurator: configurator,
		codec:        codec,
		users:        users,
		accounts:     accounts,
		logger:       logger,
	}
}

// SessionMaxAge returns the lifetime of the session cookie
func (s *AuthService) SessionMaxAge() time.Duration {
	return s.codec.MaxAge()
}

// Providers returns the provider map
func (s *AuthService) Providers() []appauth.ProviderInfo {
	return s.configurator.ProviderMap()
}

// Authorized reports whether path may be served for session
func (s *AuthService) Authorized(path string, session *appauth.Session) bool {
	return s.configurator.Authorized(path, session)
}

// SignInErrorURL is where a failed provider sign-in lands
func (s *AuthService) SignInErrorURL() string {
	return s.configurator.BaseURL() + "/signin?error=AccessDenied"
}

// Redirect resolves a callback URL against the site's base URL
func (s *AuthService) Redirect(callbackURL string) string {
	return s.configurator.Redirect(callbackURL)
}

// SignInWithCredentials runs the password strategy. Every failure, whatever
// its cause, is reported as apperrors.ErrInvalidCredentials.
func (s *AuthService) SignInWithCredentials(ctx context.Context, req dto.CredentialsSignInRequest) (*SignInResult, error) {
	lifecycle := appauth.NewLifecycle()
	_ = lifecycle.Submit()

	creds := appauth.Credentials{Name: req.Name, Email: req.Email, Password: req.Password}
	user := s.configurator.Credentials().Authorize(ctx, creds)
	account := &appauth.Account{Provider: appauth.ProviderCredentials, Type: "credentials"}

	allowed := user != nil && s.configurator.AllowSignIn(ctx, appauth.SignInAttempt{
		User:        user,
		Account:     account,
		Credentials: &creds,
	})
	_ = lifecycle.Resolve(allowed)
	s.logState(lifecycle, appauth.ProviderCredentials)

	if !allowed {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.ID != "" {
		account.ProviderAccountID = string(user.ID)
	}
	return s.issue(lifecycle, account, user, req.CallbackURL)
}

// BeginGoogle returns the provider's consent URL and the state value the
// caller must keep until the callback.
func (s *AuthService) BeginGoogle() (authURL, state string, err error) {
	google := s.configurator.Google()
	if google == nil {
		return "", "", apperrors.ErrProviderNotFound
	}
	state = uuid.NewString()
	return google.AuthCodeURL(state), state, nil
}

// CompleteGoogle finishes the authorization-code flow
func (s *AuthService) CompleteGoogle(ctx context.Context, code, state, expectedState, callbackURL string) (*SignInResult, error) {
	google := s.configurator.Google()
	if google == nil {
		return nil, apperrors.ErrProviderNotFound
	}
	if state == "" || state != expectedState {
		return nil, apperrors.ErrOAuthStateMismatch
	}

	lifecycle := appauth.NewLifecycle()
	_ = lifecycle.Submit()

	account, profile, err := google.Exchange(ctx, code)
	if err != nil {
		_ = lifecycle.Reject()
		s.logState(lifecycle, appauth.ProviderGoogle)
		authLogger := s.configurator.Logger()
		authLogger.Error().Err(err).Msg("Provider code exchange failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSignInRejected, err)
	}

	user := appauth.MapProfile(*profile)
	allowed := s.configurator.AllowSignIn(ctx, appauth.SignInAttempt{
		User:    &user,
		Account: account,
		Profile: profile,
	})
	_ = lifecycle.Resolve(allowed)
	s.logState(lifecycle, appauth.ProviderGoogle)
	if !allowed {
		return nil, apperrors.ErrSignInRejected
	}

	s.linkAccount(ctx, &user, account)
	return s.issue(lifecycle, account, &user, callbackURL)
}

// Session decodes a session token and projects it into the client session
func (s *AuthService) Session(token string) (*appauth.Session, error) {
	if token == "" {
		return nil, apperrors.ErrSessionNotFound
	}

	claims, err := s.codec.Decode(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	current := appauth.Token{
		AccessToken: claims.AccessToken,
		ID:          claims.UserID,
		Email:       claims.Email,
		Name:        claims.Name,
	}
	session := appauth.ProjectSession(appauth.NextToken(current, appauth.RefreshEvent{}))
	return &session, nil
}

func (s *AuthService) issue(lifecycle *appauth.Lifecycle, account *appauth.Account, user *appauth.User, callbackURL string) (*SignInResult, error) {
	token := appauth.NextToken(appauth.Token{}, appauth.SignInEvent{Account: account, User: user})

	signed, err := s.codec.Encode(auth.SessionClaims{
		AccessToken: token.AccessToken,
		UserID:      token.ID,
		Email:       token.Email,
		Name:        token.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &SignInResult{
		SessionToken: signed,
		RedirectURL:  s.configurator.Redirect(callbackURL),
		Session:      appauth.ProjectSession(token),
		State:        lifecycle.State(),
	}, nil
}

// linkAccount records the provider account against a local user with the
// same email, when there is one. Failures are logged and do not block sign-in.
func (s *AuthService) linkAccount(ctx context.Context, user *appauth.User, account *appauth.Account) {
	if s.users == nil || s.accounts == nil || user.Email == "" {
		return
	}

	local, err := s.users.GetByEmail(ctx, user.Email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Warn().Err(err).Msg("Failed to look up local user for account link")
		}
		return
	}

	if _, err := s.accounts.Upsert(ctx, toAccountModel(local, account)); err != nil {
		s.logger.Warn().Err(err).Str("provider", account.Provider).Msg("Failed to link provider account")
	}
}

func toAccountModel(user *models.User, a *appauth.Account) *models.Account {
	m := &models.Account{
		UserID:            user.ID,
		Type:              a.Type,
		Provider:          a.Provider,
		ProviderAccountID: a.ProviderAccountID,
		RefreshToken:      optional(a.RefreshToken),
		AccessToken:       optional(a.AccessToken),
		TokenType:         optional(a.TokenType),
		Scope:             optional(a.Scope),
		IDToken:           optional(a.IDToken),
	}
	if a.ExpiresAt != 0 {
		expiresAt := a.ExpiresAt
		m.ExpiresAt = &expiresAt
	}
	return m
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *AuthService) logState(lifecycle *appauth.Lifecycle, provider string) {
	authLogger := s.configurator.Logger()
	authLogger.Debug().
		Str("provider", provider).
		Stringer("state", lifecycle.State()).
		Msg("Sign-in attempt finished")
}
