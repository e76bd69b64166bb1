package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

func GetProfileByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// CreateProfile performs a single create. The unique index on user_id is what
// enforces at most one profile per user; a second create fails there.
func CreateProfile(profile *models.Profile) error {
	return config.DB.Create(profile).Error
}

// UpdateProfile replaces the fitness attributes of an existing profile
// wholesale, keeping its row identity.
func UpdateProfile(userID uint, input *models.Profile) error {
	existing, err := GetProfileByUserID(userID)
	if err != nil {
		return err
	}

	input.ID = existing.ID
	input.UserID = userID
	input.CreatedAt = existing.CreatedAt
	return config.DB.Save(input).Error
}
