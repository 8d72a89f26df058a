package auth

import (
	"context"
	"time"

	"cricauction-backend/internal/database/models"

	"github.com/google/uuid"
)

type sessionContextKey struct{}

// Session is the identity derived from a validated session token
type Session struct {
	UserID    uuid.UUID   `json:"userId"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Image     string      `json:"image"`
	Role      models.Role `json:"role"`
	IssuedAt  time.Time   `json:"issuedAt"`
	ExpiresAt time.Time   `json:"expires"`
}

// ContextWithSession returns a copy of ctx carrying session
func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext returns the session stored on ctx, or nil
func SessionFromContext(ctx context.Context) *Session {
	if ctx == nil {
		return nil
	}
	session, _ := ctx.Value(sessionContextKey{}).(*Session)
	return session
}

// IsUser reports whether the session belongs to userID
func (s *Session) IsUser(userID uuid.UUID) bool {
	return s != nil && s.UserID == userID
}
