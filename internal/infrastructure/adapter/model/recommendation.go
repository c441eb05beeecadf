package model

import (
	"time"
)

// Recommendation represents the database model for service provider
// recommendations. Author display fields are snapshots taken at submission.
type Recommendation struct {
	ID           string    `gorm:"primaryKey;size:64"`
	UserID       string    `gorm:"size:128;not null;index"`
	UserName     string    `gorm:"size:255"`
	UserEmail    string    `gorm:"size:255"`
	ProviderName string    `gorm:"size:255;not null"`
	Company      string    `gorm:"size:255;not null"`
	ServiceType  string    `gorm:"size:128;not null;index"`
	Contact      string    `gorm:"size:64"`
	Description  string    `gorm:"type:text"`
	Rating       int       `gorm:"not null"`
	CardImageURL string    `gorm:"size:512"`
	ServedFor    string    `gorm:"size:32"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for Recommendation
func (Recommendation) TableName() string {
	return "recommendations"
}

// Comment represents a rated remark on a recommendation
type Comment struct {
	ID               string    `gorm:"primaryKey;size:64"`
	RecommendationID string    `gorm:"size:64;not null;index"`
	AuthorID         string    `gorm:"size:128;not null"`
	AuthorName       string    `gorm:"size:255"`
	Content          string    `gorm:"type:text;not null"`
	Rating           int       `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// ServiceType represents an entry in the service taxonomy.
// New entries may be created inline when a recommendation names one.
type ServiceType struct {
	Name      string    `gorm:"primaryKey;size:128"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for ServiceType
func (ServiceType) TableName() string {
	return "service_types"
}
