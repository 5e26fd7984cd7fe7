package auth

import (
	"net/http"

	"github.com/akeren/enquiry-portal/config/router"
	"github.com/akeren/enquiry-portal/internal/web"
	"github.com/akeren/enquiry-portal/pkg/constants"
)

// SessionUsernameKey is where RequireSession stashes the authenticated
// username for downstream handlers.
const SessionUsernameKey = "session_username"

// RequireSession guards a route behind a valid session cookie. Unauthenticated
// requests get the 401 fragment pointing at the login page.
func RequireSession(service AuthService) router.MiddlewareFunc {
	return func(c *router.RequestContext) {
		token, err := c.Cookie(constants.SessionCookieName)
		if err != nil || token == "" {
			rejectUnauthorized(c)
			return
		}

		session, err := service.Validate(c.Request.Context(), token)
		if err != nil || session == nil {
			rejectUnauthorized(c)
			return
		}

		c.Set(SessionUsernameKey, session.Username)
		c.Next()
	}
}

func rejectUnauthorized(c *router.RequestContext) {
	c.Data(http.StatusUnauthorized, "text/html; charset=utf-8", []byte(web.UnauthorizedFragment))
	c.Abort()
}
