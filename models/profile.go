package models

import (
    "gorm.io/datatypes"
    "gorm.io/gorm"
)

// Profile holds the fitness attributes collected after registration.
// Equipment/Injures/Others mirror the onboarding form and stay schema-less.
type Profile struct {
    gorm.Model
    UserID uint `gorm:"uniqueIndex;not null" json:"userId"`

    FirstName string `gorm:"not null" json:"firstName"`
    LastName  string `gorm:"not null" json:"lastName"`
    Age       int    `gorm:"not null" json:"age"`
    Height    float64 `gorm:"not null" json:"height"`
    Weight    float64 `gorm:"not null" json:"weight"`
    Gender    string  `gorm:"not null" json:"gender"`

    Goal  string `gorm:"not null" json:"goal"`
    Level string `gorm:"not null" json:"level"`
    Place string `gorm:"not null" json:"place"`
    Able  bool   `json:"able"`

    Days        int `gorm:"not null" json:"days"`
    SessionTime int `gorm:"not null" json:"sessionTime"`

    Equipment datatypes.JSON `gorm:"type:jsonb" json:"equipment"`
    Injures   datatypes.JSON `gorm:"type:jsonb" json:"injures,omitempty"`
    Others    datatypes.JSON `gorm:"type:jsonb" json:"others,omitempty"`
}
