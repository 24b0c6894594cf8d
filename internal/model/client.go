package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a buyer. PhoneNumber is unique and acts as the lookup key
// when a contract references a client.
type Client struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Fname       string `gorm:"size:64;not null" json:"fname"`
	PhoneNumber string `gorm:"size:32;uniqueIndex;not null" json:"phone_number"`
	Firma       string `gorm:"size:128;not null" json:"firma"`
	Type        string `gorm:"size:64;not null" json:"type"`
	Location    string `gorm:"size:128;not null" json:"location"`
	Active      bool   `gorm:"not null;default:false" json:"active"`

	AdminID string `gorm:"size:36;index;not null" json:"admin_id"`
	Admin   *Admin `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

func (Client) TableName() string { return "clients" }

func (c *Client) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
