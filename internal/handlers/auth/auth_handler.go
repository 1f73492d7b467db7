// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"hotel-admin-service/internal/middleware"
	"hotel-admin-service/internal/pkg/response"
	"hotel-admin-service/internal/pkg/session"
	service "hotel-admin-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	authService  *service.AuthService
	sessions     *session.Manager
	cookieSecure bool
	logger       *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, sessions *session.Manager, cookieSecure bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessions:     sessions,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// Login exchanges operator credentials for a session cookie and returns the
// principal.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid input")
		return
	}

	sess, cookie, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.ProxyError(c, err, "login failed")
		return
	}

	h.setSessionCookie(c, cookie, h.sessions.MaxAge())
	response.JSON(c, http.StatusOK, sess.Principal())
}

// Logout revokes the session upstream, destroys it locally, and expires the
// cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.MustGetSession(c)

	if err := h.authService.Logout(c.Request.Context(), sess); err != nil {
		h.logger.Warn("logout cleanup failed", zap.String("session_id", sess.ID), zap.Error(err))
	}

	h.setSessionCookie(c, "", -1)
	response.JSON(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated principal.
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.MustGetSession(c)
	response.JSON(c, http.StatusOK, sess.Principal())
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, value, maxAge, "/", "", h.cookieSecure, true)
}
