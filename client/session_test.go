package client

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}, &models.ResetCode{}))
	config.DB = db

	r := gin.New()
	r.POST("/api/register", controllers.Register)
	r.POST("/api/login", controllers.Login)
	r.POST("/api/logout", controllers.Logout)
	r.GET("/api/session", controllers.Session)

	authed := r.Group("/api")
	authed.Use(middlewares.AuthMiddleware())
	authed.GET("/profile/get", controllers.GetProfile)
	authed.POST("/profile/save", controllers.SaveProfile)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestSessionCache_FullFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "client-secret")

	srv := startTestServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)

	// fresh client: not authenticated
	authed, err := c.IsAuthenticated()
	require.NoError(t, err)
	assert.False(t, authed)

	require.NoError(t, c.Register("Test User", "a@b.com", "x"))

	user, err := c.GetSession()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "Test User", user.Name)

	authed, err = c.IsAuthenticated()
	require.NoError(t, err)
	assert.True(t, authed)

	// registered but onboarding incomplete
	done, err := c.HasCompletedProfile()
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, c.Logout())

	authed, err = c.IsAuthenticated()
	require.NoError(t, err)
	assert.False(t, authed)
}

func TestSessionCache_LoginErrors(t *testing.T) {
	t.Setenv("JWT_SECRET", "client-secret")

	srv := startTestServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)

	require.NoError(t, c.Register("Test User", "a@b.com", "x"))
	require.NoError(t, c.Logout())

	err = c.Login("a@b.com", "y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong password")

	err = c.Login("nobody@b.com", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")

	require.NoError(t, c.Login("a@b.com", "x"))
	authed, err := c.IsAuthenticated()
	require.NoError(t, err)
	assert.True(t, authed)
}
