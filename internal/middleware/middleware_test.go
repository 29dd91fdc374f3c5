package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped user not found", fmt.Errorf("lookup: %w", apperrors.ErrUserNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeCredentialsSignin},
		{"sign-in rejected", apperrors.ErrSignInRejected, http.StatusForbidden, dto.ErrorCodeAccessDenied},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_CustomErrorOverridesMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, &apperrors.CustomError{
		Err:     apperrors.ErrCourseNotFound,
		Message: "Course 42 does not exist",
		Details: map[string]interface{}{"id": "42"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Course 42 does not exist", resp.Error.Message)
	assert.Equal(t, map[string]interface{}{"id": "42"}, resp.Error.Details)
}

func newTestRouter(t *testing.T) (*gin.Engine, *auth.SessionCodec) {
	t.Helper()
	backend := appauth.NewBackendClient("http://127.0.0.1:0", nil, zerolog.Nop())
	configurator := appauth.NewConfigurator(appauth.AuthConfig{BaseURL: "https://courses.example"}, backend, nil, zerolog.Nop())
	codec := auth.NewSessionCodec(auth.SessionConfig{Secret: "test-secret", MaxAge: time.Hour})
	authService := services.NewAuthService(configurator, codec, nil, nil, zerolog.Nop())
	m := NewAuthMiddleware(authService, zerolog.Nop())

	router := gin.New()
	router.Use(m.LoadSession(), m.Authorize())
	whoami := func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, session.User.Email)
	}
	router.GET("/public", whoami)
	router.GET("/middleware-example", whoami)
	router.GET("/api/v1/courses/:id", whoami)
	router.GET("/private", m.RequireSession(), whoami)
	return router, codec
}

func serve(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	router, codec := newTestRouter(t)
	token, err := codec.Encode(auth.SessionClaims{UserID: "7", Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	t.Run("public path without session", func(t *testing.T) {
		w := serve(router, "/public", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("public path loads session", func(t *testing.T) {
		w := serve(router, "/public", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ada@example.com", w.Body.String())
	})

	t.Run("protected path without session", func(t *testing.T) {
		w := serve(router, "/middleware-example", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrorCodeUnauthorized, decodeError(t, w).Error.Code)
	})

	t.Run("protected prefix without session", func(t *testing.T) {
		w := serve(router, "/api/v1/courses/123", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("protected path with session", func(t *testing.T) {
		w := serve(router, "/middleware-example", token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid cookie is anonymous", func(t *testing.T) {
		w := serve(router, "/public", "garbage")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())

		w = serve(router, "/private", "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("require session", func(t *testing.T) {
		w := serve(router, "/private", token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

type pageQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=10"`
}

func TestBindQuery(t *testing.T) {
	router := gin.New()
	router.GET("/items", BindQuery[pageQuery](), func(c *gin.Context) {
		q, ok := ValidatedQuery[pageQuery](c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"limit": q.Limit})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items?limit=5", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"limit":5}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items?limit=50", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Error.Code)
}
