package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreLocation is a warehouse or shop a product can be shelved at.
type StoreLocation struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string `gorm:"size:128;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
}

func (StoreLocation) TableName() string { return "locations" }

func (l *StoreLocation) BeforeCreate(*gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
