package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/justicelink/justicelink/internal/models"
	"github.com/justicelink/justicelink/internal/types"
)

// Context keys under which the authenticated caller is published to
// handlers.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// Session value keys. The session holds only the user id and role; the
// full user record is always re-read from storage when needed.
const (
	SessionUserID = "user_id"
	SessionRole   = "role"
)

// RequireAuth resolves the caller's server-side session before any
// business logic runs and short-circuits with 401 when no authenticated
// session exists.
func RequireAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return types.NewCustomError(fiber.StatusUnauthorized, "auth.session", "Authentication required")
		}

		userID, _ := sess.Get(SessionUserID).(string)
		role, _ := sess.Get(SessionRole).(string)
		if userID == "" {
			return types.NewCustomError(fiber.StatusUnauthorized, "auth.session", "Authentication required")
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, models.Role(role))

		return c.Next()
	}
}
