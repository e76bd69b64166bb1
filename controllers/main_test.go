package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/config"
	"backend/middlewares"
	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the shared handle at a fresh in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}, &models.ResetCode{}))
	config.DB = db
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	r := gin.New()
	r.POST("/api/register", Register)
	r.POST("/api/login", Login)
	r.POST("/api/logout", Logout)
	r.GET("/api/session", Session)
	r.POST("/api/forgot-password", ForgotPassword)
	r.POST("/api/reset-password", ResetPassword)

	authed := r.Group("/api")
	authed.Use(middlewares.AuthMiddleware())
	authed.GET("/profile/get", GetProfile)
	authed.POST("/profile/save", SaveProfile)
	authed.PUT("/profile/update", UpdateProfile)

	return r
}

func doRequest(r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func tokenCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" && c.Value != "" {
			return c
		}
	}
	return nil
}

// registerAndCookie creates a user through the API and returns its cookie.
func registerAndCookie(t *testing.T, r *gin.Engine, email string) *http.Cookie {
	t.Helper()

	w := doRequest(r, "POST", "/api/register", map[string]string{
		"name": "Test User", "email": email, "password": "x",
	})
	body := decodeBody(t, w)
	require.Equal(t, true, body["success"], "register failed: %v", body["message"])

	cookie := tokenCookie(w)
	require.NotNil(t, cookie)
	return cookie
}
