package auth

import (
	"net/http"
	"strings"

	"cricauction-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName is the cookie carrying the session token
	SessionCookieName = "session_token"

	sessionContextKeyGin = "auth_session"
)

// AuthMiddleware provides session authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the session token and rejects the request without one
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// OptionalAuth validates the session token if present but doesn't require it
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.authenticate(c)
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) bool {
	tokenString, fromCookie := extractToken(c)
	if tokenString == "" {
		return false
	}

	session, err := m.service.ValidateToken(tokenString)
	if err != nil {
		if fromCookie {
			ClearSessionCookie(c, m.service.config)
		}
		return false
	}

	if m.service.NeedsRenewal(session) {
		token, renewed, err := m.service.Renew(session)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Warn("Failed to renew session")
		} else {
			session = renewed
			if fromCookie {
				SetSessionCookie(c, m.service.config, token)
			} else {
				c.Header("X-Session-Token", token)
			}
		}
	}

	SetSession(c, session)
	return true
}

// SetSession attaches session to the gin context and the request context
func SetSession(c *gin.Context, session *Session) {
	c.Set(sessionContextKeyGin, session)
	ctx := ContextWithSession(c.Request.Context(), session)
	ctx = logger.ContextWithUser(ctx, session.Email)
	c.Request = c.Request.WithContext(ctx)
}

func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		token := strings.TrimPrefix(header, "Bearer ")
		if token != header {
			return strings.TrimSpace(token), false
		}
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

// SetSessionCookie writes token to the session cookie
func SetSessionCookie(c *gin.Context, config *AuthConfig, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(config.SessionMaxAge.Seconds()), "/", "", config.SecureCookies, true)
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(c *gin.Context, config *AuthConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", config.SecureCookies, true)
}

// GetSession is a helper function to extract the session from the gin context
func GetSession(c *gin.Context) (*Session, bool) {
	value, exists := c.Get(sessionContextKeyGin)
	if !exists {
		return nil, false
	}
	session, ok := value.(*Session)
	return session, ok && session != nil
}
