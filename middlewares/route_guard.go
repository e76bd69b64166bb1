package middlewares

import (
	"net/http"
	"strings"

	"backend/utils"

	"github.com/gin-gonic/gin"
)

// Pages that require authentication.
var protectedRoutes = []string{"/dashboard", "/complete-profile"}

// Pages that only make sense for signed-out visitors.
var authRoutes = []string{"/auth/signin", "/auth/signup"}

func matchesAny(path string, routes []string) bool {
	for _, route := range routes {
		if strings.HasPrefix(path, route) {
			return true
		}
	}
	return false
}

// RouteGuard intercepts page requests and redirects based on authentication
// state. Verification is purely local (signature + expiry); the guard never
// consults the database.
func RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		isProtected := matchesAny(path, protectedRoutes)
		isAuthPage := matchesAny(path, authRoutes)
		if !isProtected && !isAuthPage {
			c.Next()
			return
		}

		tokenString, err := c.Cookie(utils.TokenCookieName)
		hasToken := err == nil && tokenString != ""

		if isProtected {
			if !hasToken {
				c.Redirect(http.StatusFound, "/auth/signin")
				c.Abort()
				return
			}
			if _, err := utils.ParseToken(tokenString); err != nil {
				utils.ClearTokenCookie(c)
				c.Redirect(http.StatusFound, "/auth/signin")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		// Auth pages: a valid session belongs on the dashboard instead. An
		// invalid token is treated the same as no token.
		if hasToken {
			if _, err := utils.ParseToken(tokenString); err == nil {
				c.Redirect(http.StatusFound, "/dashboard")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
