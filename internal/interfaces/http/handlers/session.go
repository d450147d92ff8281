// internal/interfaces/http/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookieName = "session_id"

// getOrCreateSessionID gets the shopper session ID from the cookie or
// creates a new one. The cookie lifetime matches the session TTL default.
func getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(sessionCookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()

		// Set session cookie (24 hours)
		c.SetCookie(sessionCookieName, sessionID, 86400, "/", "", false, true)
	}

	return sessionID
}
