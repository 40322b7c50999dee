package middleware

import (
	"context"
	"log"
	"net/http"

	"motionklub/internal/domain"
	"motionklub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type SessionReader interface {
	Current(ctx context.Context, clientID string) (domain.Session, error)
}

// SessionRequired rejects tokens whose session record is gone (logout or
// cleanup) or now belongs to the other role. Must run after JWTAuth.
func SessionRequired(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := ClientID(c)
		sess, err := sessions.Current(c.Request.Context(), clientID)
		if err != nil {
			log.Printf("session_lookup_failed client_id=%s error=%q", clientID, err.Error())
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load session")
			c.Abort()
			return
		}
		if sess == nil || string(sess.Role()) != c.GetString(ContextRole) {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Session has ended, please log in again")
			c.Abort()
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

func ClientID(c *gin.Context) string {
	return c.GetString(ContextClientID)
}

func GuestSession(c *gin.Context) (*domain.GuestSession, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*domain.GuestSession)
	return s, ok
}

func AnimatorSession(c *gin.Context) (*domain.AnimatorSession, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*domain.AnimatorSession)
	return s, ok
}
