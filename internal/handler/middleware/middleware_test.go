//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"meetup-capture/internal/handler/httperr"
	"meetup-capture/internal/handler/middleware"
	"meetup-capture/internal/pkg/config"
	"meetup-capture/internal/pkg/errs"
	"meetup-capture/internal/pkg/jwt"
	"meetup-capture/internal/usecase"
	"meetup-capture/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	service := jwt.NewService(cfg.JWT.Secret, "accounts")
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(service))

	router := gin.New()
	router.GET("/whoami", auth.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.String())
	})
	return router, service
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	router, service := authRouter(t)
	userID := uuid.New()

	valid, err := service.GenerateToken(userID, time.Hour)
	require.NoError(t, err)
	expired, err := service.GenerateToken(userID, -time.Minute)
	require.NoError(t, err)
	foreign, err := jwt.NewService("some-other-secret", "accounts").GenerateToken(userID, time.Hour)
	require.NoError(t, err)
	wrongIssuer, err := jwt.NewService(config.NewTestConfig().JWT.Secret, "elsewhere").GenerateToken(userID, time.Hour)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		path       string
		headers    map[string]string
		expectCode int
		expectMsg  string
	}{
		{
			name:       "success: bearer header",
			path:       "/whoami",
			headers:    map[string]string{"Authorization": "Bearer " + valid},
			expectCode: http.StatusOK,
		},
		{
			name:       "success: scheme is case-insensitive",
			path:       "/whoami",
			headers:    map[string]string{"Authorization": "bearer " + valid},
			expectCode: http.StatusOK,
		},
		{
			name:       "success: access_token query for EventSource clients",
			path:       "/whoami?access_token=" + valid,
			expectCode: http.StatusOK,
		},
		{name: "error: no token", path: "/whoami", expectCode: http.StatusUnauthorized, expectMsg: "Access token required"},
		{
			name:       "error: expired token",
			path:       "/whoami",
			headers:    map[string]string{"Authorization": "Bearer " + expired},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Invalid or expired token",
		},
		{
			name:       "error: signed with another key",
			path:       "/whoami",
			headers:    map[string]string{"Authorization": "Bearer " + foreign},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "error: issuer mismatch",
			path:       "/whoami",
			headers:    map[string]string{"Authorization": "Bearer " + wrongIssuer},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "error: basic auth is not a bearer token",
			path:       "/whoami",
			headers:    map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			expectCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, tc.path, nil, tc.headers)
			if tc.expectCode == http.StatusOK {
				assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
				assert.Equal(t, userID.String(), rec.Body.String())
				return
			}
			httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectMsg)
		})
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	router := gin.New()
	router.Use(logger.LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("propagates the caller's id", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ping", nil,
			map[string]string{"X-Request-ID": "req-42"})
		assert.Equal(t, "req-42", rec.Body.String())
		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "req-42"})
	})

	t.Run("generates one when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, "")
		id := rec.Header().Get("X-Request-ID")
		assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, id)
		assert.Equal(t, id, rec.Body.String())
	})
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.Use(middleware.ErrorHandler())
	router.GET("/recorded", func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errs.New("meetup is locked"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusConflict, "Meetup does not accept this operation now", "invalid_state"),
		})
	})
	router.GET("/silent", func(c *gin.Context) {})
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	t.Run("writes the recorded public error", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/recorded", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusConflict, "invalid_state")
	})

	t.Run("handler that wrote nothing becomes a 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusInternalServerError, "internal")
	})

	t.Run("panics are recovered into the envelope", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusInternalServerError, "internal")
	})
}
