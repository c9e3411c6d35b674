package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project represents a portfolio project with the technologies it was built with
type Project struct {
	ID                  uuid.UUID       `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title               string          `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Slug                string          `json:"slug" db:"slug" gorm:"type:varchar(200);not null;uniqueIndex"`
	Description         string          `json:"description" db:"description" gorm:"type:text;not null"`
	DetailedDescription string          `json:"detailed_description" db:"detailed_description" gorm:"type:text"`
	Technologies        []Technology    `json:"technologies,omitempty" gorm:"many2many:project_technologies;"`
	GithubURL           string          `json:"github_url" db:"github_url" gorm:"type:text"`
	DemoURL             string          `json:"demo_url" db:"demo_url" gorm:"type:text"`
	Status              ProjectStatus   `json:"status" db:"status" gorm:"type:varchar(20);not null;default:development;index"`
	Priority            int             `json:"priority" db:"priority" gorm:"type:integer;not null;default:0"`
	Featured            bool            `json:"featured" db:"featured" gorm:"not null;default:false"`
	Thumbnail           string          `json:"thumbnail" db:"thumbnail" gorm:"type:text"`
	Screenshots         datatypes.JSON  `json:"screenshots,omitempty" db:"screenshots"`
	CreatedDate         time.Time       `json:"created_date" db:"created_date" gorm:"autoCreateTime"`
	UpdatedDate         time.Time       `json:"updated_date" db:"updated_date" gorm:"autoUpdateTime"`
	CompletionDate      *datatypes.Date `json:"completion_date,omitempty" db:"completion_date"`
}

func (p *Project) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Status == "" {
		p.Status = ProjectDevelopment
	}
	return nil
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

// TechnologySlugs lists the slugs of the linked technologies
func (p *Project) TechnologySlugs() []string {
	slugs := make([]string, 0, len(p.Technologies))
	for _, t := range p.Technologies {
		slugs = append(slugs, t.Slug)
	}
	return slugs
}
