package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMember struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(100);not null"`
	RegNumber     string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	ContactNumber string    `gorm:"type:varchar(20);not null"`
	Department    string    `gorm:"type:varchar(64);not null;index"`
	Role          string    `gorm:"type:varchar(100);not null"`
	GithubLink    string    `gorm:"type:text"`
	LinkedinLink  string    `gorm:"type:text"`
	ResumeLink    string    `gorm:"type:text"`
	PortfolioLink string    `gorm:"type:text"`
	Skills        []string  `gorm:"type:text;serializer:json"`
	ShortBio      string    `gorm:"type:varchar(500)"`
	ImagePath     *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

func (TeamMember) TableName() string {
	return "team_members"
}

// Migrate creates or updates the team member table and its indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&TeamMember{})
}
