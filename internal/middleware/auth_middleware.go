package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
)

// SessionKey is the gin context key holding the current *auth.Session
const SessionKey = "session"

// AuthMiddleware reads the session cookie and guards protected paths
type AuthMiddleware struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService *services.AuthService, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// LoadSession decodes the session cookie when present. A missing or invalid
// cookie leaves the request anonymous.
func (m *AuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(services.SessionCookieName)
		if err == nil && token != "" {
			session, err := m.authService.Session(token)
			if err != nil {
				m.logger.Debug().Err(err).Msg("Ignoring invalid session cookie")
			} else {
				c.Set(SessionKey, session)
			}
		}
		c.Next()
	}
}

// Authorize rejects requests to protected paths that carry no session
func (m *AuthMiddleware) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authService.Authorized(c.Request.URL.Path, CurrentSession(c)) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}

// RequireSession rejects any request without a session
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Session cookie missing or invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session loaded by LoadSession, or nil
func CurrentSession(c *gin.Context) *appauth.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*appauth.Session)
	return session
}
