// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
)

// AuthController serves the sign-in endpoints
type AuthController struct {
	authService   *services.AuthService
	secureCookies bool
	logger        zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, secureCookies bool, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:   authService,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// Providers lists the OAuth providers a client can offer
// @Summary List sign-in providers
// @Description Returns the configured OAuth providers. The password strategy is not listed.
// @Tags auth
// @Produce json
// @Success 200 {array} dto.ProviderResponse "Provider map"
// @Router /auth/providers [get]
func (c *AuthController) Providers(ctx *gin.Context) {
	providers := c.authService.Providers()
	resp := make([]dto.ProviderResponse, len(providers))
	for i, p := range providers {
		resp[i] = dto.ProviderResponse{ID: p.ID, Name: p.Name}
	}
	ctx.JSON(http.StatusOK, resp)
}

// CredentialsCallback signs a user in with email and password
// @Summary Password sign-in
// @Description Validates the credentials against the backend and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CredentialsSignInRequest true "Credentials"
// @Success 200 {object} dto.SignInResponse "Sign-in successful"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 401 {object} dto.ErrorResponse "CredentialsSignin"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/callback/credentials [post]
func (c *AuthController) CredentialsCallback(ctx *gin.Context) {
	var req dto.CredentialsSignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid credentials sign-in payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.authService.SignInWithCredentials(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, result.SessionToken)
	c.logger.Info().Str("user_id", result.Session.User.ID).Msg("User signed in with credentials")
	ctx.JSON(http.StatusOK, dto.SignInResponse{URL: result.RedirectURL})
}

// GoogleSignIn starts the Google authorization-code flow
// @Summary Start Google sign-in
// @Description Redirects to Google's consent screen
// @Tags auth
// @Param callbackUrl query string false "Where to land after sign-in"
// @Success 302 "Redirect to provider"
// @Failure 404 {object} dto.ErrorResponse "Google sign-in is not configured"
// @Router /auth/signin/google [get]
func (c *AuthController) GoogleSignIn(ctx *gin.Context) {
	authURL, state, err := c.authService.BeginGoogle()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	maxAge := int(services.StateMaxAge / time.Second)
	c.setCookie(ctx, services.StateCookieName, state, maxAge)
	if callbackURL := ctx.Query("callbackUrl"); callbackURL != "" {
		c.setCookie(ctx, services.CallbackCookieName, callbackURL, maxAge)
	}
	ctx.Redirect(http.StatusFound, authURL)
}

// GoogleCallback completes the Google authorization-code flow
// @Summary Google sign-in callback
// @Description Exchanges the authorization code, runs the sign-in gate and sets the session cookie
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "Anti-forgery state"
// @Success 302 "Redirect to the callback URL, or to the sign-in page with error=AccessDenied"
// @Router /auth/callback/google [get]
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	expectedState, _ := ctx.Cookie(services.StateCookieName)
	callbackURL, _ := ctx.Cookie(services.CallbackCookieName)
	c.setCookie(ctx, services.StateCookieName, "", -1)
	c.setCookie(ctx, services.CallbackCookieName, "", -1)

	if providerErr := ctx.Query("error"); providerErr != "" {
		c.logger.Info().Str("error", providerErr).Msg("Provider returned an error")
		ctx.Redirect(http.StatusFound, c.authService.SignInErrorURL())
		return
	}

	result, err := c.authService.CompleteGoogle(
		ctx.Request.Context(),
		ctx.Query("code"),
		ctx.Query("state"),
		expectedState,
		callbackURL,
	)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Google sign-in failed")
		ctx.Redirect(http.StatusFound, c.authService.SignInErrorURL())
		return
	}

	c.setSessionCookie(ctx, result.SessionToken)
	c.logger.Info().Str("email", result.Session.User.Email).Msg("User signed in with Google")
	ctx.Redirect(http.StatusFound, result.RedirectURL)
}

// Session returns the current session
// @Summary Current session
// @Description Returns the session projected from the session cookie, or an empty object
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse "Session, or {} when signed out"
// @Router /auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	session := middleware.CurrentSession(ctx)
	if session == nil {
		ctx.JSON(http.StatusOK, gin.H{})
		return
	}
	ctx.JSON(http.StatusOK, toSessionResponse(session))
}

// SignOut clears the session cookie
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SignInResponse "Where to navigate after sign-out"
// @Router /auth/signout [post]
func (c *AuthController) SignOut(ctx *gin.Context) {
	c.setCookie(ctx, services.SessionCookieName, "", -1)
	ctx.JSON(http.StatusOK, dto.SignInResponse{URL: c.authService.Redirect(ctx.Query("callbackUrl"))})
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string) {
	c.setCookie(ctx, services.SessionCookieName, token, int(c.authService.SessionMaxAge()/time.Second))
}

func (c *AuthController) setCookie(ctx *gin.Context, name, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(name, value, maxAge, "/", "", c.secureCookies, true)
}

func toSessionResponse(s *appauth.Session) dto.SessionResponse {
	return dto.SessionResponse{
		AccessToken: s.AccessToken,
		User: dto.SessionUserResponse{
			ID:    s.User.ID,
			Email: s.User.Email,
			Name:  s.User.Name,
		},
	}
}
