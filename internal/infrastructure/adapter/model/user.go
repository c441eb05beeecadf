package model

import (
	"time"
)

// User represents the database model for resident accounts.
// The primary key is the opaque id issued by the identity provider.
type User struct {
	ID          string    `gorm:"primaryKey;size:128"`
	Email       string    `gorm:"size:255;index"`
	DisplayName string    `gorm:"size:255"`
	PhotoURL    string    `gorm:"size:512"`
	Role        string    `gorm:"size:32;not null;default:resident"`
	Balance     int64     `gorm:"not null;default:0"` // Points, kept in sync with the ledger

	FullName     string `gorm:"size:255"`
	Condominium  string `gorm:"size:255"`
	PostalCode   string `gorm:"size:16"`
	Street       string `gorm:"size:255"`
	District     string `gorm:"size:255"`
	City         string `gorm:"size:255"`
	State        string `gorm:"size:8"`
	StreetNumber string `gorm:"size:16"`
	Whatsapp     string `gorm:"size:32"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
