package controllers

import (
	"net/http"
	"time"

	"backend/config"
	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalErrorMessage = "internal server error try again later"

// swapped out in tests
var sendResetEmail = utils.SendResetEmail

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates the user, mints a token and hands it back as an HTTP-only
// cookie. The raw token never appears in the response body.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "data is missing"})
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "data is missing"})
		return
	}

	user, err := services.RegisterUser(input.Name, input.Email, input.Password)
	if err != nil {
		if err == services.ErrUserExists {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "user already exist"})
			return
		}
		config.Logger().Error("register failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false, "message": internalErrorMessage})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		config.Logger().Error("token mint failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false, "message": internalErrorMessage})
		return
	}
	utils.SetTokenCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "user created successfully",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "data is missing"})
		return
	}
	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "data is missing"})
		return
	}

	user, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "user not found"})
		case services.ErrWrongPassword:
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "wrong password"})
		default:
			config.Logger().Error("login failed", zap.Error(err))
			c.JSON(http.StatusOK, gin.H{"success": false, "message": internalErrorMessage})
		}
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		config.Logger().Error("token mint failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false, "message": internalErrorMessage})
		return
	}
	utils.SetTokenCookie(c, token)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "user logged in successfully"})
}

// Logout only clears the client's cookie; a stateless token stays valid until
// it expires.
func Logout(c *gin.Context) {
	utils.ClearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out successfully"})
}

// Session is the browser's source of truth for "who is logged in".
func Session(c *gin.Context) {
	tokenString, err := c.Cookie(utils.TokenCookieName)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "not authenticated"})
		return
	}

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "invalid token"})
		return
	}

	user, err := services.FindUserByID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "data is missing"})
		return
	}

	// Always answer the same way so the endpoint can't be used to enumerate
	// registered emails.
	neutral := gin.H{"success": true, "message": "if the email exists, a reset code has been sent"}

	user, err := services.FindUserByEmail(input.Email)
	if err != nil {
		c.JSON(http.StatusOK, neutral)
		return
	}

	code := utils.GenerateRandomToken(6)
	reset := models.ResetCode{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
	if err := config.DB.Create(&reset).Error; err != nil {
		config.Logger().Error("reset code create failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false, "message": internalErrorMessage})
		return
	}

	if err := sendResetEmail(user.Email, code); err != nil {
		config.Logger().Error("reset email failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, neutral)
}

func ResetPassword(c *gin.Context) {
	var input struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Token == "" || input.NewPassword == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "data is missing"})
		return
	}

	var reset models.ResetCode
	if err := config.DB.Where("code = ?", input.Token).First(&reset).Error; err != nil || time.Now().After(reset.ExpiresAt) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "invalid or expired token"})
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		config.Logger().Error("password hash failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false, "message": internalErrorMessage})
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", reset.UserID).
		Update("password", hashed).Error; err != nil {
		config.Logger().Error("password update failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false, "message": internalErrorMessage})
		return
	}
	config.DB.Delete(&reset)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password has been reset"})
}
