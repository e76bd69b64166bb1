package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"backend/config"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type ProfileInput struct {
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Age         int             `json:"age"`
	Height      float64         `json:"height"`
	Weight      float64         `json:"weight"`
	Gender      string          `json:"gender"`
	Goal        string          `json:"goal"`
	Level       string          `json:"level"`
	Place       string          `json:"place"`
	Able        bool            `json:"able"`
	SessionTime int             `json:"sessionTime"`
	Days        int             `json:"days"`
	Equipment   json.RawMessage `json:"equipment"`
	Injures     json.RawMessage `json:"injures"`
	Others      json.RawMessage `json:"others"`
}

// normalizeJSONField accepts an object/array, or a string wrapping one, and
// returns the canonical JSON value. ok is false for any other shape.
func normalizeJSONField(raw json.RawMessage) (value datatypes.JSON, present bool, ok bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, false, true
	}

	if strings.HasPrefix(trimmed, "\"") {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return nil, true, false
		}
		trimmed = strings.TrimSpace(inner)
	}

	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return nil, true, false
	}
	if !json.Valid([]byte(trimmed)) {
		return nil, true, false
	}
	return datatypes.JSON(trimmed), true, true
}

// validateProfileInput applies the onboarding rules and either returns the
// profile to store or a field-specific failure message.
func validateProfileInput(input *ProfileInput) (*models.Profile, string) {
	equipment, equipmentPresent, equipmentOK := normalizeJSONField(input.Equipment)

	if input.FirstName == "" || input.LastName == "" || input.Age == 0 ||
		input.Height == 0 || input.Weight == 0 || input.Gender == "" ||
		input.Goal == "" || input.Level == "" || input.Place == "" ||
		input.SessionTime == 0 || input.Days == 0 || !equipmentPresent {
		return nil, "data is missing"
	}

	if input.Age > 100 || input.Age < 0 {
		return nil, "invalid age"
	}
	if input.Days > 7 || input.Days < 0 {
		return nil, "invalid days"
	}
	if input.Height < 0 {
		return nil, "invalid height"
	}
	if input.Weight < 0 {
		return nil, "invalid weight"
	}

	if !equipmentOK {
		return nil, "invalid equipment"
	}
	injures, injuresPresent, injuresOK := normalizeJSONField(input.Injures)
	if injuresPresent && !injuresOK {
		return nil, "invalid injures"
	}
	others, othersPresent, othersOK := normalizeJSONField(input.Others)
	if othersPresent && !othersOK {
		return nil, "invalid others"
	}

	return &models.Profile{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Age:         input.Age,
		Height:      input.Height,
		Weight:      input.Weight,
		Gender:      input.Gender,
		Goal:        input.Goal,
		Level:       input.Level,
		Place:       input.Place,
		Able:        input.Able,
		SessionTime: input.SessionTime,
		Days:        input.Days,
		Equipment:   equipment,
		Injures:     injures,
		Others:      others,
	}, ""
}

// GetProfile reports "no profile yet" as a normal non-success response so the
// client can tell onboarding-incomplete apart from not-authenticated.
func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	profile, err := services.GetProfileByUserID(userID)
	if err != nil {
		if err == services.ErrProfileNotFound {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "user dont have profile"})
			return
		}
		config.Logger().Error("profile lookup failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false, "message": internalErrorMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "done", "profile": profile})
}

// SaveProfile performs a single create; the unique index on user_id rejects a
// second profile for the same user.
func SaveProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "data is missing"})
		return
	}

	profile, msg := validateProfileInput(&input)
	if msg != "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": msg})
		return
	}
	profile.UserID = userID

	if err := services.CreateProfile(profile); err != nil {
		config.Logger().Error("profile create failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false, "message": internalErrorMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "profile saved"})
}

// UpdateProfile mutates an existing profile wholesale.
func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "data is missing"})
		return
	}

	profile, msg := validateProfileInput(&input)
	if msg != "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": msg})
		return
	}

	if err := services.UpdateProfile(userID, profile); err != nil {
		if err == services.ErrProfileNotFound {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "user dont have profile"})
			return
		}
		config.Logger().Error("profile update failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false, "message": internalErrorMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "profile updated"})
}
