package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/security"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthSettings holds the single admin credential and token parameters.
type AuthSettings struct {
	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration
	SecureCookie      bool
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandlers contains all authentication-related HTTP handlers
type AuthHandlers struct {
	settings    AuthSettings
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewAuthHandlers creates auth handlers with injected dependencies
func NewAuthHandlers(settings AuthSettings, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AuthHandlers {
	return &AuthHandlers{
		settings:    settings,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// PostLogin handles POST /api/v1/auth/login
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("post_login_request", c.ClientIP())
	defer marker.Complete()
	h.logger.Auth().Debug("Received login request", "method", c.Request.Method, "path", c.Request.URL.Path)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Auth().Error("Login request JSON binding failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if h.settings.AdminPasswordHash == "" || h.settings.JWTSecret == "" {
		h.logger.Auth().Error("Login attempted but admin credentials are not configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "authentication is not configured"})
		return
	}

	emailOK := strings.EqualFold(strings.TrimSpace(req.Email), h.settings.AdminEmail)
	passwordOK := security.CheckPassword(h.settings.AdminPasswordHash, req.Password)
	if !emailOK || !passwordOK {
		h.logger.Auth().Warn("Login attempt failed", "email", req.Email, "duration", time.Since(start))
		marker.SetSuccess(false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, expires, err := security.GenerateAdminToken(h.settings.AdminEmail, h.settings.JWTSecret, h.settings.TokenTTL)
	if err != nil {
		h.logger.Auth().Error("Failed to issue admin token", "error", err.Error())
		marker.SetError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.SetCookie(middleware.AuthCookie, token, int(h.settings.TokenTTL.Seconds()), "/", "", h.settings.SecureCookie, true)

	h.logger.Auth().Info("Login successful", "email", h.settings.AdminEmail, "duration", time.Since(start))
	marker.SetSuccess(true)
	marker.Complete()
	h.logger.Perf().Info("Performance for PostLogin request", "duration", marker.Duration, "success", true)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     token,
		"expiresAt": expires,
	})
}

// PostLogout handles POST /api/v1/auth/logout - clears the auth cookie
func (h *AuthHandlers) PostLogout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", h.settings.SecureCookie, true)
	h.logger.Auth().Info("Logout completed")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetAuthStatus handles GET /api/v1/admin/auth/status, behind AdminAuth.
func (h *AuthHandlers) GetAuthStatus(c *gin.Context) {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"email":         admin.Email,
		"expiresAt":     admin.ExpiresAt,
	})
}
