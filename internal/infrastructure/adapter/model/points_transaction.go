package model

import (
	"time"
)

// PointsTransaction represents the database model for ledger entries.
// Rows are append-only; nothing in the codebase updates or deletes them.
type PointsTransaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      string    `gorm:"size:128;not null;index"`
	Amount      int64     `gorm:"not null"`
	Description string    `gorm:"size:255;not null"`
	Reference   string    `gorm:"size:64"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for PointsTransaction
func (PointsTransaction) TableName() string {
	return "points_transactions"
}
