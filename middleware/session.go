package middleware

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prodea_gateway/api"
	"prodea_gateway/session"
)

const CookieName = "prodea_session"

// Context keys set by the session middleware.
const (
	ContextSessionID = "sessionID"
	ContextRecord    = "sessionRecord"
)

// Session issues a session cookie on first contact and loads the stored
// auth record, if any, into the request context. A logged-in session's
// access token is attached to the request context so every backend call
// made with it carries the bearer token. The middleware never rejects a
// request: an anonymous session is a valid session.
func Session(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(CookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(CookieName, sid, 0, "/", "", false, true)
		}
		c.Set(ContextSessionID, sid)

		rec, err := store.Get(sid)
		if err == nil {
			c.Set(ContextRecord, rec)
			if rec.AccessToken != "" {
				ctx := api.ContextWithToken(c.Request.Context(), rec.AccessToken)
				c.Request = c.Request.WithContext(ctx)
			}
		} else if !errors.Is(err, session.ErrNoSession) {
			log.Printf("Error reading session %s: %v", sid, err)
		}

		c.Next()
	}
}

// SessionID returns the ID the middleware attached to this request.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}

// Record returns the stored auth record and whether one exists.
func Record(c *gin.Context) (session.Record, bool) {
	v, ok := c.Get(ContextRecord)
	if !ok {
		return session.Record{}, false
	}
	rec, ok := v.(session.Record)
	return rec, ok
}
