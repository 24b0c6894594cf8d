package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is a back-office actor. Super admins may manage other admins.
type Admin struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Fname    string `gorm:"size:64;not null" json:"fname"`
	Lname    string `gorm:"size:64;not null" json:"lname"`
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	// Password holds the bcrypt hash, never the plain text.
	Password string `gorm:"size:128;not null" json:"-"`
	Super    bool   `gorm:"not null;default:false" json:"super"`
	Image    string `gorm:"size:255" json:"image"`
}

func (Admin) TableName() string { return "admins" }

func (a *Admin) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
