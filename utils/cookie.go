package utils

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const TokenCookieName = "token"

func secureCookies() bool {
	return os.Getenv("APP_ENV") == "production"
}

// SetTokenCookie stores the auth token as an HTTP-only, same-site-strict
// cookie scoped to the whole site, matching the token's 7-day lifetime.
func SetTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookieName, token, int(TokenTTL.Seconds()), "/", "", secureCookies(), true)
}

// ClearTokenCookie removes the auth cookie from the client.
func ClearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookieName, "", -1, "/", "", secureCookies(), true)
}
