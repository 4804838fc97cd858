//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"workspace-booking/internal/domain/account"
	"workspace-booking/internal/handler/middleware"
	"workspace-booking/internal/pkg/jwt"
	"workspace-booking/internal/usecase"
	"workspace-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, svc *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	r := gin.New()
	whoami := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID.String(), "role": actor.Role.String()})
	}
	r.GET("/me", m.RequireAuth(), whoami)
	r.GET("/admin", m.RequireAuth(), m.RequireAdmin(), whoami)
	r.GET("/broken", m.RequireAdmin(), whoami)
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	router := newAuthRouter(t, svc)
	accountID := uuid.New()

	memberToken, err := svc.GenerateToken(accountID, account.RoleMember)
	require.NoError(t, err)
	adminToken, err := svc.GenerateToken(accountID, account.RoleAdmin)
	require.NoError(t, err)
	foreignToken, err := jwt.NewService("other-secret", time.Hour).GenerateToken(accountID, account.RoleAdmin)
	require.NoError(t, err)
	expiredToken, err := jwt.NewService("test-secret", -time.Minute).GenerateToken(accountID, account.RoleMember)
	require.NoError(t, err)

	t.Run("valid token exposes the actor", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, memberToken)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, accountID.String(), body["id"])
		assert.Equal(t, "member", body["role"])
	})

	tests := []struct {
		name   string
		token  string
		expect string
	}{
		{name: "missing token", token: "", expect: "Access token required"},
		{name: "garbage token", token: "not-a-jwt", expect: "Invalid or expired token"},
		{name: "wrong signing key", token: foreignToken, expect: "Invalid or expired token"},
		{name: "expired token", token: expiredToken, expect: "Invalid or expired token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tt.token)
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, tt.expect)
		})
	}

	t.Run("admin route", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, adminToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, memberToken)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})

	t.Run("role check without auth context is a server error", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/broken", nil, adminToken)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

func TestRequireAuth_UnknownRole(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	router := newAuthRouter(t, svc)

	token, err := svc.GenerateToken(uuid.New(), account.Role("owner"))
	require.NoError(t, err)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
	httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
}
