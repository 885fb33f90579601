// handlers/auth_handlers.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/services"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// AuthHandler handles login, logout and session lookups
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// SessionMiddleware resolves the bearer token into a session email on the
// request context. It never aborts: unauthenticated requests proceed and
// the actor resolver degrades through its fallback chain.
func SessionMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session, err := authService.ParseToken(bearerToken(c)); err == nil && session != nil {
			c.Set(sessionEmailKey, session.Email)
		}
		c.Next()
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, result)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(bearerToken(c)); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, true)
}

// GetCurrentUser handles GET /api/auth/current-user. It reports the
// resolved actor name even when unauthenticated so audit previews match
// what would be recorded.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	email := sessionEmail(c)
	utils.HandleSuccess(c, gin.H{
		"email":    email,
		"username": h.userService.ResolveActorName(email),
	})
}

// GetSession handles GET /api/auth/session
func (h *AuthHandler) GetSession(c *gin.Context) {
	session, err := h.authService.ParseToken(bearerToken(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, session)
}

// SaveUserInfo handles POST /api/auth/save-user-info
func (h *AuthHandler) SaveUserInfo(c *gin.Context) {
	var req models.SaveUserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := h.userService.SaveUserInfo(&req); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, true)
}

// CheckAuth handles GET /api/check-auth
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": sessionEmail(c) != ""})
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
