package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag labels blog posts
type Tag struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:varchar(50);not null;uniqueIndex"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:varchar(80);not null;uniqueIndex"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
}

func (t *Tag) BeforeSave(tx *gorm.DB) error {
	if t.Slug == "" {
		t.Slug = Slugify(t.Name)
	}
	return nil
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}
