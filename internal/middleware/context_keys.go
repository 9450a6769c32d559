package middleware

import (
	"context"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const sessionKey = contextKey("session")

// WithSession returns a copy of ctx carrying the caller's session.
func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSessionFromContext retrieves the authenticated session from the Gin context.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (domain.Session, bool) {
	if val, exists := c.Get(string(sessionKey)); exists {
		if session, ok := val.(domain.Session); ok {
			return session, true
		}
	}
	session, ok := c.Request.Context().Value(sessionKey).(domain.Session)
	return session, ok
}
