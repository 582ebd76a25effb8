package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tradetalent/backend/internal/auth"
	"github.com/tradetalent/backend/internal/respond"
)

// UserEmailKey is the context key the gate stores the verified email under.
const UserEmailKey = "userEmail"

// TokenVerify guards protected routes. It fails closed with 401 when the
// Authorization header or bearer token is missing or does not verify, and
// otherwise attaches the verified email for the handler.
func TokenVerify(verifier auth.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return respond.Fail(c, http.StatusUnauthorized, "Unauthorized")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[1] == "" {
				return respond.Fail(c, http.StatusUnauthorized, "Unauthorized")
			}

			email, err := verifier.Verify(c.Request().Context(), parts[1])
			if err != nil {
				return respond.Fail(c, http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(UserEmailKey, email)
			return next(c)
		}
	}
}

// UserEmail reads the verified email a passing gate stored on the context.
func UserEmail(c echo.Context) string {
	email, _ := c.Get(UserEmailKey).(string)
	return email
}
