package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog item. Count is the units available for sale;
// it is only ever decremented through the stock ledger's conditional
// update, so it can never go below zero.
type Product struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Marka    string `gorm:"size:128;not null" json:"marka"`
	Count    int64  `gorm:"not null;default:0" json:"count"`
	Price    int64  `gorm:"not null" json:"price"` // unit price, in tiyin
	Kwt      string `gorm:"size:32" json:"kwt"`
	Turnover string `gorm:"size:64" json:"turnover"`
	Location string `gorm:"size:128" json:"location"`
	Img      string `gorm:"size:255" json:"img"`

	CategoryID string    `gorm:"size:36;index;not null" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Product) TableName() string { return "products" }

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
