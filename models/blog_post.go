package models

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxExcerptLength = 300

// BlogPost represents a learning journal entry. PublishedDate is stamped the
// first time the post is saved as published and is never moved afterwards.
type BlogPost struct {
	ID                  uuid.UUID    `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title               string       `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Slug                string       `json:"slug" db:"slug" gorm:"type:varchar(200);not null;uniqueIndex"`
	Content             string       `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt             string       `json:"excerpt" db:"excerpt" gorm:"type:varchar(300)"`
	Category            BlogCategory `json:"category" db:"category" gorm:"type:varchar(50);not null;default:learning;index"`
	Tags                []Tag        `json:"tags,omitempty" gorm:"many2many:blog_post_tags;"`
	RelatedTechnologies []Technology `json:"related_technologies,omitempty" gorm:"many2many:blog_post_technologies;"`
	RelatedProjectID    *uuid.UUID   `json:"related_project_id,omitempty" db:"related_project_id" gorm:"type:uuid;index"`
	RelatedProject      *Project     `json:"related_project,omitempty" gorm:"foreignKey:RelatedProjectID;references:ID;constraint:OnDelete:SET NULL"`
	Published           bool         `json:"published" db:"published" gorm:"not null;default:false;index"`
	PublishedDate       *time.Time   `json:"published_date,omitempty" db:"published_date" gorm:"index"`
	CreatedDate         time.Time    `json:"created_date" db:"created_date" gorm:"autoCreateTime"`
	UpdatedDate         time.Time    `json:"updated_date" db:"updated_date" gorm:"autoUpdateTime"`
	Views               uint         `json:"views" db:"views" gorm:"not null;default:0"`
}

func (p *BlogPost) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Category == "" {
		p.Category = BlogLearning
	}
	if n := utf8.RuneCountInString(p.Excerpt); n > MaxExcerptLength {
		return fmt.Errorf("excerpt has %d characters, at most %d allowed", n, MaxExcerptLength)
	}
	p.stampPublished(time.Now())
	return nil
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

// stampPublished records the first publication time. It is a no-op for drafts
// and for posts that already carry a published date.
func (p *BlogPost) stampPublished(now time.Time) {
	if p.Published && p.PublishedDate == nil {
		p.PublishedDate = &now
	}
}

// TagSlugs lists the slugs of the linked tags
func (p *BlogPost) TagSlugs() []string {
	slugs := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		slugs = append(slugs, t.Slug)
	}
	return slugs
}
