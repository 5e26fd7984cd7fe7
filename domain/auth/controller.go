package auth

import (
	"net/http"
	"time"

	"github.com/akeren/enquiry-portal/config/router"
	"github.com/akeren/enquiry-portal/internal/log"
	"github.com/akeren/enquiry-portal/internal/web"
	"github.com/akeren/enquiry-portal/pkg/constants"
	"github.com/akeren/enquiry-portal/pkg/factory"
)

// Login attempts are limited well below the global default to slow down
// credential guessing against the single admin account.
const loginRequestsPerMinute = 10

func NewAuthController(
	service AuthService,
	renderer *web.Renderer,
	logger *log.Logger,
	limiters factory.RateLimiterFactory,
	sessionTTL time.Duration,
) *router.RESTController {

	return router.NewRESTController(
		"AuthController",
		"/",
		func(rs *router.RouterService, c *router.RESTController) {
			loginLimiter := limiters.CreateRateLimiter(loginRequestsPerMinute, time.Minute)

			rs.AddGetHandler(c, nil, "login", loginPageHandler(renderer))
			rs.AddPostHandler(c, loginLimiter, "login", loginHandler(service, sessionTTL))
			rs.AddPostHandler(c, nil, "logout", logoutHandler(service))
		},
	)
}

func loginPageHandler(renderer *web.Renderer) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		page, err := renderer.LoginPage()
		if err != nil {
			router.GetLogger(ctx).Error("Failed to render login page", "error", err)
			return router.InternalServerErrorResult("Unable to render login page")
		}

		return router.HTMLResult(http.StatusOK, page)
	}
}

func loginHandler(service AuthService, sessionTTL time.Duration) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		username := ctx.PostForm("user")
		password := ctx.PostForm("psw")

		session, err := service.Login(ctx.Request.Context(), username, password)
		if err != nil {
			return router.HTMLResult(http.StatusUnauthorized, web.LoginFailedFragment)
		}

		cookie := &http.Cookie{
			Name:     constants.SessionCookieName,
			Value:    session.Token,
			Path:     "/",
			MaxAge:   int(sessionTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}

		return router.RedirectResult("/enquiries").WithCookie(cookie)
	}
}

func logoutHandler(service AuthService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		token, err := ctx.Cookie(constants.SessionCookieName)
		if err == nil && token != "" {
			if logoutErr := service.Logout(ctx.Request.Context(), token); logoutErr != nil {
				router.GetLogger(ctx).Error("Failed to destroy session", "error", logoutErr)
			}
		}

		expired := &http.Cookie{
			Name:     constants.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}

		return router.RedirectResult("/login").WithCookie(expired)
	}
}
