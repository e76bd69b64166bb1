package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"backend/config"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AIController struct {
	Gemini *services.GeminiService
	Hub    *services.RealtimeHub
}

func NewAIController(gemini *services.GeminiService, hub *services.RealtimeHub) *AIController {
	return &AIController{Gemini: gemini, Hub: hub}
}

const coachSystemPrompt = `## Overview
You are AI Fitness & Diet Planner called (Healthify). Your job is to assist users with fitness, nutrition, workout plans, and general physical health only. Always be polite, supportive, and reply in the user's language.

## Rules
- Answer only fitness, nutrition, workouts, and physical health topics
- If the user asks about anything outside this scope, politely explain that you are specialized only in fitness, diet, and exercise
- Do not provide medical diagnoses, medications, or treatments
- Promote safe and sustainable habits

## Instructions
1) Start the first interaction with a friendly welcome message introducing yourself as AI Fitness & Diet Planner
2) Detect the user's language and respond using the same language
3) If the user requests a diet or workout plan, ask for height, weight, age, gender, goals, activity level, and injuries
4) Provide personalized guidance only after collecting the required information
the previous was the system rules.`

type ChatInput struct {
	Message string `json:"message"`
}

// ChatBot answers a single chat message. A valid cookie is optional: when one
// is present and the caller has a profile, the prompt carries their stats so
// replies are personalized.
func (a *AIController) ChatBot(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "please enter your message"})
		return
	}

	if !a.Gemini.HasAPIKey() {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "api key is not found, add it to .env file"})
		return
	}

	var sb strings.Builder
	sb.WriteString(coachSystemPrompt)

	if tokenString, err := c.Cookie(utils.TokenCookieName); err == nil && tokenString != "" {
		if claims, err := utils.ParseToken(tokenString); err == nil {
			if profile, err := services.GetProfileByUserID(claims.UserID); err == nil {
				sb.WriteString(fmt.Sprintf(
					"\nknown user profile: age %d, gender %s, height %.0fcm, weight %.0fkg, goal %s, level %s, trains %d days/week.",
					profile.Age, profile.Gender, profile.Height, profile.Weight,
					profile.Goal, profile.Level, profile.Days,
				))
			}
		}
	}

	sb.WriteString("\nuser message : ")
	sb.WriteString(input.Message)

	response, err := a.Gemini.GenerateContent(sb.String())
	if err != nil {
		config.Logger().Error("chat generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": internalErrorMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "response": response})
}

// GenerateExercises builds a workout plan from the caller's profile. Cookie
// auth only; this endpoint reports each failure stage distinctly.
func (a *AIController) GenerateExercises(c *gin.Context) {
	tokenString, err := c.Cookie(utils.TokenCookieName)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
		return
	}

	profile, err := services.GetProfileByUserID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "profile not found. please complete your profile first."})
		return
	}

	if !a.Gemini.HasAPIKey() {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "api key not configured"})
		return
	}

	exercises, err := services.GenerateWorkoutPlan(a.Gemini, profile)
	if err != nil {
		config.Logger().Error("workout generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to generate exercises. please try again."})
		return
	}

	if a.Hub != nil {
		a.Hub.BroadcastEvent(claims.UserID, gin.H{
			"type":      "plan_ready",
			"exercises": exercises,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "exercises": exercises})
}
