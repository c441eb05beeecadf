package model

import (
	"time"
)

// Coupon represents the database model for catalog offers
type Coupon struct {
	ID             string    `gorm:"primaryKey;size:64"`
	Title          string    `gorm:"size:255;not null"`
	Description    string    `gorm:"type:text"`
	Cost           int64     `gorm:"not null"` // Price in points
	ExpirationDate time.Time `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Coupon
func (Coupon) TableName() string {
	return "coupons"
}

// OwnedCoupon represents a purchased coupon instance.
// UniqueCode carries the global uniqueness constraint that makes redemption
// a single indexed lookup.
type OwnedCoupon struct {
	ID           string     `gorm:"primaryKey;size:64"`
	CouponID     string     `gorm:"size:64;not null;index"`
	OwnerID      string     `gorm:"size:128;not null;index"`
	UniqueCode   string     `gorm:"size:64;not null;uniqueIndex"`
	PurchaseDate time.Time  `gorm:"not null"`
	Used         bool       `gorm:"not null;default:false"`
	ValidatedBy  string     `gorm:"size:128"`
	ValidatedAt  *time.Time
}

// TableName specifies the table name for OwnedCoupon
func (OwnedCoupon) TableName() string {
	return "owned_coupons"
}
