package models

import (
	"regexp"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultTechnologyColor = "#3498db"

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Technology is a language, framework or tool linked to projects and posts
type Technology struct {
	ID       uuid.UUID          `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name     string             `json:"name" db:"name" gorm:"type:varchar(50);not null;uniqueIndex"`
	Slug     string             `json:"slug" db:"slug" gorm:"type:varchar(80);not null;uniqueIndex"`
	Category TechnologyCategory `json:"category" db:"category" gorm:"type:varchar(50);not null;index"`
	Color    string             `json:"color" db:"color" gorm:"type:varchar(7);not null"`
}

func (t *Technology) BeforeSave(tx *gorm.DB) error {
	if t.Slug == "" {
		t.Slug = Slugify(t.Name)
	}
	if !hexColorPattern.MatchString(t.Color) {
		t.Color = DefaultTechnologyColor
	}
	return nil
}

func (t *Technology) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}
