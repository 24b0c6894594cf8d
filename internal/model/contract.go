package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contract is a sale: an ordered list of product units sold to a client
// by a vendor admin. Total is the undiscounted sum of unit prices;
// Price is the derived final amount after the discount and is never
// edited directly.
type Contract struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []ContractItem `gorm:"foreignKey:ContractID" json:"items"`

	ClientID string  `gorm:"size:36;index;not null" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	VendorID string `gorm:"size:36;index;not null" json:"vendor_id"`
	Vendor   *Admin `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`

	Discount int64   `gorm:"not null;default:0" json:"discount"` // percent, 0..100
	Paytype  PayType `gorm:"size:16;not null;default:'cash'" json:"paytype"`
	Total    int64   `gorm:"not null" json:"total"` // sum of unit prices, in tiyin
	Price    int64   `gorm:"not null" json:"price"` // total after discount, in tiyin
}

func (Contract) TableName() string { return "contracts" }

func (c *Contract) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ContractItem is one unit of one product inside a contract. The same
// product may appear on several positions; each row is one unit sold.
type ContractItem struct {
	ID         uint     `gorm:"primarykey" json:"-"`
	ContractID string   `gorm:"size:36;index;not null" json:"-"`
	Position   int      `gorm:"not null" json:"position"`
	ProductID  string   `gorm:"size:36;index;not null" json:"product_id"`
	Product    *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (ContractItem) TableName() string { return "contract_items" }

// ContractEvent is an audit row written by the queue consumer after a
// contract mutation has been relayed through Kafka. EventID is unique
// so replayed messages collapse into a single row.
type ContractEvent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	EventID    string `gorm:"size:64;uniqueIndex;not null" json:"event_id"`
	Action     string `gorm:"size:16;not null" json:"action"` // created / deleted
	ContractID string `gorm:"size:36;index;not null" json:"contract_id"`
	VendorID   string `gorm:"size:36;index" json:"vendor_id"`
	Price      int64  `gorm:"not null" json:"price"`
}

func (ContractEvent) TableName() string { return "contract_events" }
