package middleware

import (
	"net/http"
	"strings"

	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/security"
	"github.com/gin-gonic/gin"
)

// AuthCookie carries the admin token for browser clients.
const AuthCookie = "admin_auth"

const adminKey = "admin"

// AdminAuth rejects requests without a valid admin token, read from the
// Authorization header or the auth cookie.
func AdminAuth(jwtSecret string, logger *logging.ChanneledLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			logger.Auth().Warn("Unauthorized access attempt", "path", c.Request.URL.Path, "reason", "missing token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := security.ValidateJWT(token, jwtSecret)
		if err != nil {
			logger.Auth().Warn("Unauthorized access attempt", "path", c.Request.URL.Path, "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		admin, err := security.AdminFromClaims(claims)
		if err != nil {
			logger.Auth().Warn("Token without admin role", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set(adminKey, admin)
		c.Next()
	}
}

// GetAdmin returns the identity set by AdminAuth.
func GetAdmin(c *gin.Context) (*security.Admin, bool) {
	v, ok := c.Get(adminKey)
	if !ok {
		return nil, false
	}
	admin, ok := v.(*security.Admin)
	return admin, ok
}

// AdminEmail returns the authenticated admin's email, or "".
func AdminEmail(c *gin.Context) string {
	if admin, ok := GetAdmin(c); ok {
		return admin.Email
	}
	return ""
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	// Browsers cannot set headers on websocket upgrades.
	if t := c.Query("token"); t != "" && c.GetHeader("Upgrade") != "" {
		return t
	}
	if cookie, err := c.Cookie(AuthCookie); err == nil {
		return cookie
	}
	return ""
}
