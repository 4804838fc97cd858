package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"workspace-booking/internal/domain/account"
	"workspace-booking/internal/handler/httperr"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase"
	"workspace-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAccountIDKey = "account_id"
	ctxRoleKey      = "account_role"
)

var (
	errMissingToken       = errs.New("missing bearer token")
	errInvalidToken       = errs.New("invalid bearer token")
	errMissingAuthContext = errs.New("auth context missing; RequireAuth must run first")
	errInsufficientRole   = errs.New("insufficient role")
)

var roleHierarchy = map[account.Role]int{
	account.RoleMember: 1,
	account.RoleAdmin:  2,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		accountID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Wrap(err, errInvalidToken.Error()), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAccountIDKey, accountID)
		c.Set(ctxRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"account_id": accountID.String(),
			"role":       string(role),
		})
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingAuthContext, "Internal server error", nil)
			return
		}

		if !hasMinimumRole(role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRoleAtLeast(account.RoleAdmin)
}

func hasMinimumRole(role, minRole account.Role) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOK := roleHierarchy[minRole]
	return ok && minOK && level >= minLevel
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxAccountIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (account.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(account.Role)
	return role, ok
}

// GetActor combines the authenticated account and role for usecases that
// authorize by role.
func GetActor(c *gin.Context) (shared.Actor, bool) {
	id, ok := GetAccountID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, ok := GetRole(c)
	if !ok {
		return shared.Actor{}, false
	}
	return shared.Actor{ID: id, Role: role}, true
}

// SetAuthContext is what RequireAuth stores; handler tests use it in place of
// a signed token.
func SetAuthContext(c *gin.Context, accountID uuid.UUID, role account.Role) {
	c.Set(ctxAccountIDKey, accountID)
	c.Set(ctxRoleKey, role)
}
