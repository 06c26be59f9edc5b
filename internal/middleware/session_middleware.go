package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionCookie is the name of the cookie carrying the session id.
const SessionCookie = "session_id"

// SessionKey is the Locals key under which handlers find the session id.
const SessionKey = "session_id"

// Session is a Fiber middleware that assigns every client a session id.
// Carts, checkout flows and current orders are all keyed by it. The id is
// issued in a cookie on first contact and echoed back on every request.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookie)
		if sessionID == "" {
			sessionID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Expires:  time.Now().Add(24 * time.Hour),
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}

		// Store the id in the Fiber context for subsequent handlers
		c.Locals(SessionKey, sessionID)

		return c.Next()
	}
}

// SessionID returns the request's session id set by Session.
func SessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(SessionKey).(string); ok {
		return id
	}
	return ""
}
