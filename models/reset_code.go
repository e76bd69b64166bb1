package models

import (
    "time"

    "gorm.io/gorm"
)

// ResetCode is a short-lived password reset code delivered over email.
type ResetCode struct {
    gorm.Model
    UserID    uint      `gorm:"index;not null"`
    Code      string    `gorm:"index;not null"`
    ExpiresAt time.Time `gorm:"not null"`
}
