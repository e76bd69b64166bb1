package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(config.Logger()))

	hub := services.NewRealtimeHub()
	gemini := services.NewGeminiService()
	ai := controllers.NewAIController(gemini, hub)
	rt := controllers.NewRealtimeController(hub)

	vision, err := services.NewVisionService()
	if err != nil {
		config.Logger().Warn("vision service unavailable", zap.Error(err))
	}
	photos := controllers.NewPhotoController(vision)

	// Public auth routes
	api := r.Group("/api")
	{
		api.POST("/register", controllers.Register)
		api.POST("/login", controllers.Login)
		api.POST("/logout", controllers.Logout)
		api.GET("/session", controllers.Session)
		api.POST("/forgot-password", controllers.ForgotPassword)
		api.POST("/reset-password", controllers.ResetPassword)

		// cookie optional: personalizes when present
		api.POST("/ai-bot", ai.ChatBot)

		// does its own cookie check to report auth stages distinctly
		api.POST("/generate-exercises", ai.GenerateExercises)
	}

	// Routes that require a resolved identity
	authed := r.Group("/api")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/profile/get", controllers.GetProfile)
		authed.POST("/profile/save", controllers.SaveProfile)
		authed.PUT("/profile/update", controllers.UpdateProfile)
		authed.POST("/photos/upload", photos.UploadProgressPhoto)
		authed.POST("/photos/analyze", photos.AnalyzeProgressPhoto)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/events", rt.EventsWS)
	}

	// Pages sit behind the route guard so unauthenticated visitors get
	// redirected before anything renders.
	r.Use(middlewares.RouteGuard())
	r.Static("/assets", "./public/assets")
	r.StaticFile("/", "./public/index.html")
	r.StaticFile("/dashboard", "./public/dashboard.html")
	r.StaticFile("/complete-profile", "./public/complete-profile.html")
	r.StaticFile("/auth/signin", "./public/signin.html")
	r.StaticFile("/auth/signup", "./public/signup.html")

	return r
}
