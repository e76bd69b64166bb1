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

func guardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RouteGuard())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/", ok)
	r.GET("/dashboard", ok)
	r.GET("/complete-profile", ok)
	r.GET("/auth/signin", ok)
	r.GET("/auth/signup", ok)
	return r
}

func doGet(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: utils.TokenCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouteGuard_DecisionTable(t *testing.T) {
	t.Setenv("JWT_SECRET", "other-secret")
	invalid, err := utils.GenerateJWT(1, "a@b.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "guard-secret")
	valid, err := utils.GenerateJWT(1, "a@b.com")
	require.NoError(t, err)

	r := guardedRouter()

	cases := []struct {
		name         string
		path         string
		cookie       string
		wantStatus   int
		wantLocation string
	}{
		{"protected no token", "/dashboard", "", http.StatusFound, "/auth/signin"},
		{"protected valid token", "/dashboard", valid, http.StatusOK, ""},
		{"protected invalid token", "/dashboard", invalid, http.StatusFound, "/auth/signin"},
		{"onboarding no token", "/complete-profile", "", http.StatusFound, "/auth/signin"},
		{"auth page valid token", "/auth/signin", valid, http.StatusFound, "/dashboard"},
		{"auth page invalid token", "/auth/signin", invalid, http.StatusOK, ""},
		{"auth page no token", "/auth/signin", "", http.StatusOK, ""},
		{"signup valid token", "/auth/signup", valid, http.StatusFound, "/dashboard"},
		{"unclassified no token", "/", "", http.StatusOK, ""},
		{"unclassified invalid token", "/", invalid, http.StatusOK, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doGet(r, tc.path, tc.cookie)
			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantLocation != "" {
				assert.Equal(t, tc.wantLocation, w.Header().Get("Location"))
			}
		})
	}
}

func TestRouteGuard_ClearsCookieOnInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "guard-secret")

	r := guardedRouter()
	w := doGet(r, "/dashboard", "garbage")

	assert.Equal(t, http.StatusFound, w.Code)

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.TokenCookieName && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "expected token cookie to be cleared")
}
