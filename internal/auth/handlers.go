package auth

import (
	"net/http"
	"net/url"
	"strings"

	apperrors "cricauction-backend/internal/errors"
	"cricauction-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	states  *StateStore
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, states *StateStore) *AuthHandler {
	return &AuthHandler{service: service, states: states}
}

// SessionResponse is the body returned by the session endpoint
type SessionResponse struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message" example:"Session retrieved successfully"`
	Data    *Session `json:"data"`
}

// Start handles GET /api/auth/google/start
// @Summary Start Google sign-in
// @Description Redirects the browser to the Google consent page
// @Tags authentication
// @Success 302 {string} string "Redirect to the provider authorization URL"
// @Failure 500 {object} map[string]interface{} "Failed to generate state"
// @Failure 503 {object} map[string]interface{} "Sign-in provider not configured"
// @Router /api/auth/google/start [get]
func (h *AuthHandler) Start(c *gin.Context) {
	if !h.service.ProviderEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Sign-in provider is not configured"})
		return
	}

	state, err := h.service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate state parameter"})
		return
	}
	if err := h.states.Save(c.Writer, c.Request, state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store state parameter"})
		return
	}

	authURL, err := h.service.AuthURL(state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /api/auth/google/callback
// @Summary Complete Google sign-in
// @Description Verifies the state, exchanges the code, signs the user in and redirects to the frontend
// @Tags authentication
// @Param code query string true "OAuth authorization code from provider"
// @Param state query string true "OAuth state parameter"
// @Success 302 {string} string "Redirect to the frontend with the session cookie set"
// @Failure 400 {object} map[string]interface{} "Invalid state or missing code"
// @Router /api/auth/google/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	log := logger.WithContext(c.Request.Context())

	if providerErr := c.Query("error"); providerErr != "" {
		h.redirectToLogin(c, providerErr)
		return
	}

	if err := h.states.Verify(c.Writer, c.Request, c.Query("state")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid state parameter"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Authorization code is required"})
		return
	}

	user, err := h.service.CompleteSignIn(c.Request.Context(), code)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			h.redirectToLogin(c, "AccessDenied")
			return
		}
		log.WithError(err).Error("Sign-in failed")
		h.redirectToLogin(c, "Callback")
		return
	}

	token, _, err := h.service.IssueToken(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		h.redirectToLogin(c, "Callback")
		return
	}

	SetSessionCookie(c, h.service.config, token)
	c.Redirect(http.StatusFound, h.frontendURL(""))
}

// Session handles GET /api/auth/session
// @Summary Current session
// @Tags authentication
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /api/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	session, ok := GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{Success: true, Message: "Session retrieved successfully", Data: session})
}

// Logout handles POST /api/auth/logout
// @Summary Sign out
// @Tags authentication
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out successfully"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	ClearSessionCookie(c, h.service.config)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

func (h *AuthHandler) redirectToLogin(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, h.frontendURL("/auth/login?error="+url.QueryEscape(reason)))
}

func (h *AuthHandler) frontendURL(path string) string {
	base := strings.TrimRight(h.service.config.FrontendURL, "/")
	if base == "" && path == "" {
		return "/"
	}
	return base + path
}
