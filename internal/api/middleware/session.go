package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasklite/task-tracker/internal/core/ports"
)

// RequireSession enforces the single-slot session on top of token auth. The
// stored session is the authority: a structurally valid token whose subject
// does not match the current session is rejected. This is what makes logout
// (and a later login by someone else) invalidate outstanding tokens.
func RequireSession(accounts ports.AccountRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			session, err := accounts.GetSession(c.Request().Context())
			if err != nil || session.UserID != userID {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			return next(c)
		}
	}
}
