package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetUint("userID"), "email": c.GetString("email")})
	})
	return r
}

func TestAuthMiddleware_CookieTransport(t *testing.T) {
	t.Setenv("JWT_SECRET", "mw-secret")

	token, err := utils.GenerateJWT(5, "c@d.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: utils.TokenCookieName, Value: token})
	w := httptest.NewRecorder()
	authedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":5`)
	assert.Contains(t, w.Body.String(), `"email":"c@d.com"`)
}

func TestAuthMiddleware_LegacyBearerTransport(t *testing.T) {
	t.Setenv("JWT_SECRET", "mw-secret")

	token, err := utils.GenerateJWT(9, "e@f.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	authedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":9`)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	t.Setenv("JWT_SECRET", "mw-secret")

	r := authedRouter()

	// no credentials at all
	req := httptest.NewRequest("GET", "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// garbage cookie
	req = httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: utils.TokenCookieName, Value: "garbage"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
